package cleaner

import (
	"context"
	"sort"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/chunker"
	"github.com/nguyentantai21042004/transcript-flow/internal/contextmem"
	"github.com/nguyentantai21042004/transcript-flow/internal/dispatcher"
	"github.com/nguyentantai21042004/transcript-flow/internal/llm"
	"github.com/nguyentantai21042004/transcript-flow/pkg/overlap"
)

// Clean orchestrates the entire transcript cleaning pipeline. Each call gets
// its own context tracker so runs never leak context into each other.
func (c *implCleaner) Clean(ctx context.Context, transcript string) (string, llm.QAReport) {
	startTime := time.Now()

	c.logger.Info(ctx, "Starting transcript cleaning...")

	// Step 1: Chunk the transcript
	split := chunker.New(c.cfg.Chunking.MaxSize, c.cfg.Chunking.OverlapSize)
	chunks := split.Split(transcript)
	c.logger.Info(ctx, "Created %d chunks", len(chunks))

	if len(chunks) == 0 {
		c.logger.Warn(ctx, "Transcript is empty, nothing to clean")
		return "", llm.QAReport{Err: "empty transcript"}
	}

	// Step 2: Process chunks in parallel
	tracker := contextmem.New(c.cfg.Context.WindowSize, c.cfg.Context.Lookback, c.cfg.Context.TailPoints)
	disp := dispatcher.New(c.processor, tracker, c.logger, c.cfg.Performance.MaxWorkers)
	processed := disp.Dispatch(ctx, chunks)

	// Step 3: Sort chunks by index
	sort.Slice(processed, func(i, j int) bool {
		return processed[i].Index < processed[j].Index
	})

	// Step 4: Assemble final transcript
	c.logger.Info(ctx, "Assembling final transcript...")
	segments := make([]string, len(processed))
	for i, p := range processed {
		segments[i] = p.ProcessedText
	}
	merged := overlap.Merge(segments)

	c.logSpeakers(ctx, processed, chunks)

	// Step 5: Final quality check
	c.logger.Info(ctx, "Performing final quality check...")
	report := c.processor.Check(ctx, transcript, merged)
	if report.Success {
		c.logger.Info(ctx, "Quality score: %d/100, issues: %d, content loss: %v",
			report.QualityScore, len(report.Issues), report.ContentLoss)
	} else {
		c.logger.Error(ctx, "Quality check failed: %s", report.Err)
	}

	c.logger.Info(ctx, "Transcript cleaning completed in %s", time.Since(startTime))
	return merged, report
}

// logSpeakers summarizes the speakers the model identified. Chunks the model
// reported no speakers for fall back to a line-prefix scan of the raw text.
func (c *implCleaner) logSpeakers(ctx context.Context, processed []dispatcher.ProcessedChunk, chunks []chunker.Chunk) {
	seen := make(map[string]bool)
	for _, p := range processed {
		names := p.Speakers
		if len(names) == 0 && p.Index < len(chunks) {
			names = extractSpeakers(chunks[p.Index].Text)
		}
		for _, name := range names {
			seen[name] = true
		}
	}

	c.logger.Info(ctx, "Identified %d distinct speakers", len(seen))
}
