package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// New creates the configured Processor backend.
func New(cfg *config.LLMConfig, log logger.Logger) (Processor, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no API key configured for provider %s", cfg.Provider)
	}

	switch cfg.Provider {
	case "openai":
		return newOpenAI(cfg, log)
	case "gemini":
		return newGemini(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
