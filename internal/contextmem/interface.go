package contextmem

// Tracker is a bounded sliding-window store of context points keyed by chunk
// index. It is shared by concurrent workers and safe for concurrent use.
type Tracker interface {
	// Record stores points under index, evicting the smallest resident
	// index once the window cap is exceeded.
	Record(index int, points []string)

	// ContextFor returns the recent context for a chunk as a single
	// newline-joined string, or "" when nothing precedes it.
	ContextFor(index int) string
}
