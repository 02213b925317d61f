package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implGemini struct {
	mu          sync.Mutex
	apiKeys     []string
	currentKey  int
	model       string
	temperature float64
	logger      logger.Logger
}

func newGemini(cfg *config.LLMConfig, log logger.Logger) Processor {
	return &implGemini{
		apiKeys:     cfg.APIKeys,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      log,
	}
}

func (p *implGemini) Correct(ctx context.Context, segment, context string) CorrectionResult {
	prompt := fmt.Sprintf(correctionPrompt, clip(context, maxContextChars), segment)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		p.logger.Error(ctx, "Gemini correction call failed: %v", err)
		return CorrectionResult{Err: err.Error()}
	}

	return parseCorrection(raw)
}

func (p *implGemini) Check(ctx context.Context, original, processed string) QAReport {
	prompt := fmt.Sprintf(qualityPrompt, clip(original, maxReviewChars), clip(processed, maxReviewChars))

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		p.logger.Error(ctx, "Gemini quality call failed: %v", err)
		return QAReport{Err: err.Error()}
	}

	return parseQuality(raw)
}

// generate sends the prompt to Gemini. Rotates API keys on 429 / quota
// errors so a rate-limited key does not stall the whole run.
func (p *implGemini) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		keyIdx, key := p.pickKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.rotateKey(keyIdx)
			continue
		}

		cfg := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(p.temperature)),
		}

		result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				p.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				p.rotateKey(keyIdx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (p *implGemini) pickKey() (int, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentKey, p.apiKeys[p.currentKey]
}

// rotateKey advances past keyIdx unless a concurrent worker already did.
func (p *implGemini) rotateKey(keyIdx int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.currentKey == keyIdx {
		p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
	}
}
