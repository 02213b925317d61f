package cleaner

import (
	"regexp"
	"strings"
)

// Matches "Name:" or "Name 10:30:15:" line prefixes, the formats Zoom-style
// transcripts use for speaker attribution.
var reSpeaker = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\.]*?)(?:\s+\d{1,2}:\d{2}:\d{2})?:`)

// extractSpeakers scans raw transcript lines for speaker-name prefixes.
func extractSpeakers(text string) []string {
	seen := make(map[string]bool)
	var speakers []string

	for _, line := range strings.Split(text, "\n") {
		m := reSpeaker.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		speakers = append(speakers, name)
	}

	return speakers
}
