package cleaner

import (
	"context"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/llm"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

const sampleTranscript = `John Smith 10:30:15: Hello everyone, welcome to today's meeting.
Jane Doe 10:30:22: Thanks for having us, John.
John Smith 10:30:28: So, let's start with the agenda items.
Mike Johnson 10:30:35: Yeah, I wanted to discuss the quarterly results.
Jane Doe 10:30:42: That sounds good. I have the numbers right here.`

type stubProcessor struct {
	correct func(segment, window string) llm.CorrectionResult
	check   func(original, processed string) llm.QAReport
}

func (s *stubProcessor) Correct(ctx context.Context, segment, window string) llm.CorrectionResult {
	return s.correct(segment, window)
}

func (s *stubProcessor) Check(ctx context.Context, original, processed string) llm.QAReport {
	return s.check(original, processed)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Performance.MaxWorkers = 2
	return cfg
}

func TestCleanSingleChunk(t *testing.T) {
	proc := &stubProcessor{
		correct: func(segment, window string) llm.CorrectionResult {
			return llm.CorrectionResult{
				Success:       true,
				ProcessedText: "CLEANED TRANSCRIPT",
				Speakers:      []string{"John Smith", "Jane Doe"},
				ContextPoints: []string{"meeting kickoff"},
			}
		},
		check: func(original, processed string) llm.QAReport {
			return llm.QAReport{Success: true, QualityScore: 95}
		},
	}

	c := New(testConfig(), proc, logger.New("error"))
	got, report := c.Clean(context.Background(), sampleTranscript)

	// A transcript smaller than the chunk size is exactly one chunk, so the
	// output is that chunk's processed text verbatim.
	if got != "CLEANED TRANSCRIPT" {
		t.Errorf("Clean() = %q, want single processed chunk", got)
	}
	if !report.Success || report.QualityScore != 95 {
		t.Errorf("report = %+v", report)
	}
}

func TestCleanMultipleChunksMerged(t *testing.T) {
	cfg := testConfig()
	cfg.Chunking.MaxSize = 120
	cfg.Chunking.OverlapSize = 40

	// Echo each chunk unchanged so overlap dedup has literal text to match.
	proc := &stubProcessor{
		correct: func(segment, window string) llm.CorrectionResult {
			return llm.CorrectionResult{Success: true, ProcessedText: segment}
		},
		check: func(original, processed string) llm.QAReport {
			return llm.QAReport{Success: true, QualityScore: 90}
		},
	}

	c := New(cfg, proc, logger.New("error"))
	got, _ := c.Clean(context.Background(), sampleTranscript)

	for _, line := range strings.Split(sampleTranscript, "\n") {
		if strings.Count(got, line) != 1 {
			t.Errorf("line %q appears %d times in merged output", line, strings.Count(got, line))
		}
	}
}

func TestCleanChunkFailureDegrades(t *testing.T) {
	proc := &stubProcessor{
		correct: func(segment, window string) llm.CorrectionResult {
			return llm.CorrectionResult{Err: "boom"}
		},
		check: func(original, processed string) llm.QAReport {
			return llm.QAReport{Success: true, QualityScore: 10}
		},
	}

	c := New(testConfig(), proc, logger.New("error"))
	got, _ := c.Clean(context.Background(), sampleTranscript)

	if got != sampleTranscript {
		t.Errorf("failed run should pass raw transcript through, got %q", got)
	}
}

func TestCleanQualityCheckFailureKeepsTranscript(t *testing.T) {
	proc := &stubProcessor{
		correct: func(segment, window string) llm.CorrectionResult {
			return llm.CorrectionResult{Success: true, ProcessedText: "CLEANED"}
		},
		check: func(original, processed string) llm.QAReport {
			return llm.QAReport{Err: "qa backend down"}
		},
	}

	c := New(testConfig(), proc, logger.New("error"))
	got, report := c.Clean(context.Background(), sampleTranscript)

	if got != "CLEANED" {
		t.Errorf("quality failure must not discard the merged transcript, got %q", got)
	}
	if report.Success {
		t.Error("report should carry the quality failure")
	}
}

func TestCleanEmptyTranscript(t *testing.T) {
	proc := &stubProcessor{
		correct: func(segment, window string) llm.CorrectionResult {
			t.Error("Correct should not be called for empty input")
			return llm.CorrectionResult{}
		},
		check: func(original, processed string) llm.QAReport {
			t.Error("Check should not be called for empty input")
			return llm.QAReport{}
		},
	}

	c := New(testConfig(), proc, logger.New("error"))
	got, report := c.Clean(context.Background(), "")

	if got != "" {
		t.Errorf("Clean(\"\") = %q, want empty", got)
	}
	if report.Success {
		t.Error("empty input should not report success")
	}
}

func TestExtractSpeakers(t *testing.T) {
	speakers := extractSpeakers(sampleTranscript)

	want := []string{"John Smith", "Jane Doe", "Mike Johnson"}
	if len(speakers) != len(want) {
		t.Fatalf("extractSpeakers() = %v, want %v", speakers, want)
	}
	for i := range want {
		if speakers[i] != want[i] {
			t.Errorf("speaker %d = %q, want %q", i, speakers[i], want[i])
		}
	}
}
