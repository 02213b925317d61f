package cleaner

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/llm"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implCleaner struct {
	cfg       *config.Config
	processor llm.Processor
	logger    logger.Logger
}

// New creates a Cleaner instance
func New(cfg *config.Config, processor llm.Processor, log logger.Logger) Cleaner {
	return &implCleaner{
		cfg:       cfg,
		processor: processor,
		logger:    log,
	}
}
