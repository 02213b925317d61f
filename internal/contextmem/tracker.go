package contextmem

import "strings"

// Record stores points under index. When the store then holds more than
// windowSize entries, the entry with the smallest index is dropped; eviction
// is FIFO by index, not by recency.
func (t *implTracker) Record(index int, points []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[index] = points

	if len(t.entries) > t.windowSize {
		oldest := index
		for k := range t.entries {
			if k < oldest {
				oldest = k
			}
		}
		delete(t.entries, oldest)
	}
}

// ContextFor collects points recorded for indices [index-lookback, index-1]
// in ascending index order, keeps the last tailPoints of the flattened list
// and joins them with newlines. Indices at or past the requested one never
// contribute.
func (t *implTracker) ContextFor(index int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var points []string
	for i := index - t.lookback; i < index; i++ {
		if i < 0 {
			continue
		}
		points = append(points, t.entries[i]...)
	}

	if len(points) > t.tailPoints {
		points = points[len(points)-t.tailPoints:]
	}

	return strings.Join(points, "\n")
}
