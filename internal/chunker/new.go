package chunker

type implChunker struct {
	maxSize     int
	overlapSize int
}

// New creates a Chunker producing chunks of at most maxSize characters that
// overlap by at least overlapSize characters at the boundaries.
func New(maxSize, overlapSize int) Chunker {
	return &implChunker{
		maxSize:     maxSize,
		overlapSize: overlapSize,
	}
}
