package dispatcher

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/chunker"
)

// ProcessedChunk is the per-chunk outcome of the language-model pass. Index
// always matches the originating chunk; on failure ProcessedText carries the
// chunk's raw text with empty speakers and context points.
type ProcessedChunk struct {
	Index         int
	ProcessedText string
	Speakers      []string
	ContextPoints []string
}

// Dispatcher fans chunk processing out across a bounded worker pool. A
// failing chunk degrades to its raw text; it never fails the run.
type Dispatcher interface {
	Dispatch(ctx context.Context, chunks []chunker.Chunk) []ProcessedChunk
}
