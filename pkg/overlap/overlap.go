// Package overlap deduplicates the boundary text shared by adjacent
// processed transcript segments. Chunk boundaries are deliberately
// duplicated, so naive concatenation would double-print the shared region;
// matching here is literal suffix/prefix comparison, a best-effort heuristic
// that does not catch reworded duplicates.
package overlap

import "strings"

// maxSearch bounds how far the prefix/suffix scan looks.
const maxSearch = 500

// Find returns the longest prefix of b (up to 500 characters) that is also a
// suffix of a, or "" when the two share no boundary text.
func Find(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n > maxSearch {
		n = maxSearch
	}

	for i := n; i > 0; i-- {
		if strings.HasSuffix(a, b[:i]) {
			return b[:i]
		}
	}
	return ""
}

// Merge folds segments into one document in order. Each segment after the
// first has its detected overlap with the merged text stripped, then is
// appended after a blank line.
func Merge(segments []string) string {
	if len(segments) == 0 {
		return ""
	}

	merged := segments[0]
	for _, segment := range segments[1:] {
		if dup := Find(merged, segment); dup != "" {
			segment = strings.TrimSpace(segment[len(dup):])
		}
		merged += "\n\n" + segment
	}

	return merged
}
