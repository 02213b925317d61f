package chunker

// Chunk is a contiguous slice of the input transcript with a stable index.
// Indices are contiguous starting at 0 and never reused. StartLine/EndLine
// are best-effort metadata for logging, not used for reassembly.
type Chunk struct {
	Index     int
	Text      string
	StartLine int
	EndLine   int
}

// Chunker splits raw transcript text into bounded, overlapping chunks.
type Chunker interface {
	Split(text string) []Chunk
}
