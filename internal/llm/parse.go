package llm

import (
	"encoding/json"
	"strings"
)

type correctionResponse struct {
	ProcessedText      string   `json:"processed_text"`
	SpeakersIdentified []string `json:"speakers_identified"`
	KeyContextPoints   []string `json:"key_context_points"`
	ProcessingNotes    string   `json:"processing_notes"`
}

type qualityResponse struct {
	QualityScore        int      `json:"quality_score"`
	IssuesFound         []string `json:"issues_found"`
	ContentLossDetected bool     `json:"content_loss_detected"`
	Recommendations     []string `json:"recommendations"`
}

// parseCorrection decodes the model's JSON reply. Any decode failure, or a
// reply without processed text, maps to the empty-defaults failure result so
// the dispatcher falls back to the raw chunk.
func parseCorrection(raw string) CorrectionResult {
	var resp correctionResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return CorrectionResult{Err: "parse correction response: " + err.Error()}
	}
	if resp.ProcessedText == "" {
		return CorrectionResult{Err: "correction response missing processed_text"}
	}

	return CorrectionResult{
		Success:       true,
		ProcessedText: resp.ProcessedText,
		Speakers:      resp.SpeakersIdentified,
		ContextPoints: resp.KeyContextPoints,
	}
}

func parseQuality(raw string) QAReport {
	var resp qualityResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return QAReport{Err: "parse quality response: " + err.Error()}
	}

	return QAReport{
		Success:      true,
		QualityScore: resp.QualityScore,
		Issues:       resp.IssuesFound,
		ContentLoss:  resp.ContentLossDetected,
	}
}

// stripFences removes a surrounding markdown code fence, which chat models
// often wrap around JSON replies.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
