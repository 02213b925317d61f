package contextmem

import "sync"

type implTracker struct {
	mu         sync.Mutex
	entries    map[int][]string
	windowSize int
	lookback   int
	tailPoints int
}

// New creates a Tracker holding at most windowSize entries, serving context
// from the lookback preceding indices, trimmed to the last tailPoints points.
func New(windowSize, lookback, tailPoints int) Tracker {
	return &implTracker{
		entries:    make(map[int][]string),
		windowSize: windowSize,
		lookback:   lookback,
		tailPoints: tailPoints,
	}
}
