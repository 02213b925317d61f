package contextmem

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestContextForLookback(t *testing.T) {
	tr := New(10, 3, 5)

	tr.Record(0, []string{"budget approved"})
	tr.Record(1, []string{"hiring freeze"})
	tr.Record(2, []string{"q3 roadmap"})
	tr.Record(3, []string{"launch date"})

	tests := []struct {
		index int
		want  string
	}{
		{0, ""},
		{1, "budget approved"},
		{3, "budget approved\nhiring freeze\nq3 roadmap"},
		// index 4 looks back to 1..3 only; index 0 has scrolled out of range
		{4, "hiring freeze\nq3 roadmap\nlaunch date"},
		{10, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			if got := tr.ContextFor(tt.index); got != tt.want {
				t.Errorf("ContextFor(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestContextForNeverReturnsFuture(t *testing.T) {
	tr := New(10, 3, 5)

	tr.Record(5, []string{"future point"})
	tr.Record(2, []string{"past point"})

	got := tr.ContextFor(3)
	if strings.Contains(got, "future point") {
		t.Errorf("ContextFor(3) leaked points from index 5: %q", got)
	}
	if got != "past point" {
		t.Errorf("ContextFor(3) = %q, want %q", got, "past point")
	}
}

func TestContextForTailLimit(t *testing.T) {
	tr := New(10, 3, 5)

	tr.Record(0, []string{"a", "b", "c"})
	tr.Record(1, []string{"d", "e", "f"})
	tr.Record(2, []string{"g"})

	got := tr.ContextFor(3)
	want := "c\nd\ne\nf\ng"
	if got != want {
		t.Errorf("ContextFor(3) = %q, want last 5 points %q", got, want)
	}
}

func TestRecordEvictsSmallestIndex(t *testing.T) {
	tr := New(10, 3, 5).(*implTracker)

	for i := 0; i < 11; i++ {
		tr.Record(i, []string{fmt.Sprintf("point %d", i)})
	}

	if len(tr.entries) != 10 {
		t.Fatalf("tracker holds %d entries, want 10", len(tr.entries))
	}
	if _, ok := tr.entries[0]; ok {
		t.Error("index 0 should have been evicted first")
	}
	if _, ok := tr.entries[10]; !ok {
		t.Error("index 10 should still be resident")
	}
}

func TestConcurrentRecordAndRead(t *testing.T) {
	tr := New(10, 3, 5)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				tr.Record(w*100+i, []string{"p"})
				_ = tr.ContextFor(w*100 + i + 1)
			}
		}(w)
	}
	wg.Wait()

	got := tr.(*implTracker)
	if len(got.entries) > 10 {
		t.Errorf("tracker holds %d entries after concurrent load, want <= 10", len(got.entries))
	}
}
