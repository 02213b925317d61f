package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	openaillm "github.com/tmc/langchaingo/llms/openai"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implOpenAI struct {
	client      *openaillm.LLM
	temperature float64
	logger      logger.Logger
}

func newOpenAI(cfg *config.LLMConfig, log logger.Logger) (Processor, error) {
	opts := []openaillm.Option{
		openaillm.WithToken(cfg.APIKeys[0]),
		openaillm.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openaillm.WithBaseURL(cfg.BaseURL))
	}

	client, err := openaillm.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &implOpenAI{
		client:      client,
		temperature: cfg.Temperature,
		logger:      log,
	}, nil
}

func (p *implOpenAI) Correct(ctx context.Context, segment, context string) CorrectionResult {
	prompt := fmt.Sprintf(correctionPrompt, clip(context, maxContextChars), segment)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		p.logger.Error(ctx, "OpenAI correction call failed: %v", err)
		return CorrectionResult{Err: err.Error()}
	}

	return parseCorrection(raw)
}

func (p *implOpenAI) Check(ctx context.Context, original, processed string) QAReport {
	prompt := fmt.Sprintf(qualityPrompt, clip(original, maxReviewChars), clip(processed, maxReviewChars))

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		p.logger.Error(ctx, "OpenAI quality call failed: %v", err)
		return QAReport{Err: err.Error()}
	}

	return parseQuality(raw)
}

func (p *implOpenAI) generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := p.client.GenerateContent(ctx, messages, llms.WithTemperature(p.temperature))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return resp.Choices[0].Content, nil
}
