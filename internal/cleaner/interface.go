package cleaner

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/llm"
)

// Cleaner runs the full transcript pipeline: chunk, dispatch to the language
// model, sort, merge, quality-check. The merged transcript is returned even
// when individual chunks or the final quality check fail.
type Cleaner interface {
	Clean(ctx context.Context, transcript string) (string, llm.QAReport)
}
