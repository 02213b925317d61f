package dispatcher

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/contextmem"
	"github.com/nguyentantai21042004/transcript-flow/internal/llm"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implDispatcher struct {
	processor llm.Processor
	tracker   contextmem.Tracker
	logger    logger.Logger
	workers   int
}

// New creates a Dispatcher running at most workers concurrent language-model
// calls and recording each chunk's context points into tracker.
func New(processor llm.Processor, tracker contextmem.Tracker, log logger.Logger, workers int) Dispatcher {
	if workers <= 0 {
		workers = 4
	}

	return &implDispatcher{
		processor: processor,
		tracker:   tracker,
		logger:    log,
		workers:   workers,
	}
}
