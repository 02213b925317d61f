package overlap

import (
	"strings"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"literal shared boundary", "the meeting abcXYZ", "XYZdef continues", "XYZ"},
		{"no shared boundary", "abc", "xyz", ""},
		{"whole of b", "hello world", "world", "world"},
		{"single char", "ab", "bc", "b"},
		{"empty a", "", "abc", ""},
		{"empty b", "abc", "", ""},
		{"prefers longest match", "xaba", "abax", "aba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(tt.a, tt.b); got != tt.want {
				t.Errorf("Find(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFindCapsSearchLength(t *testing.T) {
	shared := strings.Repeat("s", 600)
	a := "prefix" + shared
	b := shared + "suffix"

	got := Find(a, b)
	if len(got) != 500 {
		t.Errorf("Find() matched %d chars, want cap of 500", len(got))
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"empty", nil, ""},
		{"single segment", []string{"a"}, "a"},
		{"no overlap", []string{"first", "second"}, "first\n\nsecond"},
		{"overlap stripped", []string{"Hello world", "world today", "today is great"}, "Hello world\n\ntoday\n\nis great"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.segments); got != tt.want {
				t.Errorf("Merge(%v) = %q, want %q", tt.segments, got, tt.want)
			}
		})
	}
}

func TestMergeRemovesBoundaryDuplicates(t *testing.T) {
	got := Merge([]string{"Hello world", "world today", "today is great"})

	if !strings.Contains(got, "Hello world") {
		t.Errorf("merged text lost leading segment: %q", got)
	}
	if !strings.Contains(got, "is great") {
		t.Errorf("merged text lost trailing segment: %q", got)
	}
	if strings.Count(got, "world") != 1 {
		t.Errorf("overlap %q duplicated in %q", "world", got)
	}
	if strings.Count(got, "today") != 1 {
		t.Errorf("overlap %q duplicated in %q", "today", got)
	}
}
