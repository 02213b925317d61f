package llm

import "context"

// CorrectionResult is the structured outcome of cleaning one transcript
// segment. Failures never cross the boundary as errors; they come back with
// Success false and every field at its empty default.
type CorrectionResult struct {
	Success       bool
	ProcessedText string
	Speakers      []string
	ContextPoints []string
	Err           string
}

// QAReport is the outcome of the final quality check over the whole run.
type QAReport struct {
	Success      bool
	QualityScore int
	Issues       []string
	ContentLoss  bool
	Err          string
}

// Processor is the language-model collaborator. Correct cleans a transcript
// segment given recent context; Check reviews the full original against the
// processed result. Implementations must never panic across this boundary.
type Processor interface {
	Correct(ctx context.Context, segment, context string) CorrectionResult
	Check(ctx context.Context, original, processed string) QAReport
}
