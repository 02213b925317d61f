package chunker

import "strings"

// Split accumulates whole lines into chunks until adding the next line would
// exceed maxSize, then closes the chunk and seeds the next one with the
// closed chunk's trailing lines (at least overlapSize characters of them, in
// original order). Lines are never split. Size accounting sums line lengths
// only, excluding the newline separators re-added on join.
//
// A line longer than maxSize flushes the current chunk and is emitted alone
// in its own chunk; oversized lines are excluded from overlap seeding. When
// the overlap seed itself would not leave room for the incoming line, seed
// lines are shed oldest-first so no regular chunk ever exceeds maxSize.
func (c *implChunker) Split(text string) []Chunk {
	lines := strings.Split(text, "\n")

	var chunks []Chunk
	var cur []string
	curLen := 0
	curStart := 0

	for i, line := range lines {
		if len(line) > c.maxSize {
			if len(cur) > 0 {
				chunks = append(chunks, newChunk(len(chunks), cur, curStart, i-1))
			}
			chunks = append(chunks, newChunk(len(chunks), []string{line}, i, i))
			cur = nil
			curLen = 0
			curStart = i + 1
			continue
		}

		if len(cur) > 0 && curLen+len(line) > c.maxSize {
			end := i - 1
			chunks = append(chunks, newChunk(len(chunks), cur, curStart, end))

			seed, seedLen := overlapSuffix(cur, c.overlapSize)
			// The seeded chunk must still fit the incoming line; shed
			// seed lines from the front until it does.
			for len(seed) > 0 && seedLen+len(line) > c.maxSize {
				seedLen -= len(seed[0])
				seed = seed[1:]
			}
			cur = seed
			curLen = seedLen
			curStart = end - len(seed) + 1
		}

		cur = append(cur, line)
		curLen += len(line)
	}

	if len(cur) > 0 && strings.TrimSpace(strings.Join(cur, "\n")) != "" {
		chunks = append(chunks, newChunk(len(chunks), cur, curStart, len(lines)-1))
	}

	return chunks
}

func newChunk(index int, lines []string, startLine, endLine int) Chunk {
	return Chunk{
		Index:     index,
		Text:      strings.Join(lines, "\n"),
		StartLine: startLine,
		EndLine:   endLine,
	}
}

// overlapSuffix walks backward from the end of lines, accumulating until the
// accumulated length reaches overlapSize, inclusive of the crossing line.
// Returns a copy so callers can append without aliasing.
func overlapSuffix(lines []string, overlapSize int) ([]string, int) {
	total := 0
	start := len(lines)
	for start > 0 {
		start--
		total += len(lines[start])
		if total >= overlapSize {
			break
		}
	}

	seed := make([]string, len(lines)-start)
	copy(seed, lines[start:])
	return seed, total
}
