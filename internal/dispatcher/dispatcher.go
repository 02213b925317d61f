package dispatcher

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/chunker"
)

// Dispatch processes every chunk through the language model under the worker
// pool and returns one ProcessedChunk per input chunk, in index order. Each
// worker reads the tracker's current context window at start time and records
// the chunk's extracted points on completion, so which context a chunk sees
// depends on scheduling order, not index order.
func (d *implDispatcher) Dispatch(ctx context.Context, chunks []chunker.Chunk) []ProcessedChunk {
	results := make([]ProcessedChunk, len(chunks))

	sem := newSemaphore(d.workers)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk chunker.Chunk) {
			defer wg.Done()

			if err := sem.acquire(ctx); err != nil {
				d.logger.Warn(ctx, "Chunk %d not processed (%v), keeping raw text", chunk.Index, err)
				results[i] = fallback(chunk)
				return
			}
			defer sem.release()

			results[i] = d.processSingle(ctx, chunk)
		}(i, chunk)
	}

	wg.Wait()
	return results
}

func (d *implDispatcher) processSingle(ctx context.Context, chunk chunker.Chunk) ProcessedChunk {
	window := d.tracker.ContextFor(chunk.Index)

	result := d.processor.Correct(ctx, chunk.Text, window)
	if !result.Success {
		d.logger.Warn(ctx, "Chunk %d processing failed (%s), keeping raw text", chunk.Index, result.Err)
		d.tracker.Record(chunk.Index, nil)
		return fallback(chunk)
	}

	d.logger.Debug(ctx, "Chunk %d processed: %d speakers, %d context points",
		chunk.Index, len(result.Speakers), len(result.ContextPoints))
	d.tracker.Record(chunk.Index, result.ContextPoints)

	return ProcessedChunk{
		Index:         chunk.Index,
		ProcessedText: result.ProcessedText,
		Speakers:      result.Speakers,
		ContextPoints: result.ContextPoints,
	}
}

// fallback degrades a failed chunk to its unprocessed text. Losing the
// cleanup beats losing the content.
func fallback(chunk chunker.Chunk) ProcessedChunk {
	return ProcessedChunk{
		Index:         chunk.Index,
		ProcessedText: chunk.Text,
	}
}
