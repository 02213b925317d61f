package llm

// Prompt input caps. Context and review excerpts are clipped so a long
// transcript cannot blow the prompt budget.
const (
	maxContextChars = 1000
	maxReviewChars  = 2000
)

const correctionPrompt = `You are a professional transcript cleaner. Process this meeting transcript segment with these requirements:

1. CORRECT GRAMMAR: Fix all grammatical errors, punctuation, and sentence structure
2. MAINTAIN SPEAKER ATTRIBUTION: Keep all speaker information intact
3. PRESERVE CONTEXT: Maintain conversation flow and meaning
4. CLEAN FORMAT: Remove filler words, but keep important content
5. STANDARDIZE SPEAKERS: Use consistent speaker naming

Previous context for continuity:
%s

Current transcript segment to process:
%s

Return ONLY a JSON object in this exact format:
{
    "processed_text": "cleaned transcript with proper formatting",
    "speakers_identified": ["Speaker 1", "Speaker 2"],
    "key_context_points": ["important topics or decisions made"],
    "processing_notes": "any notes about challenges or decisions made"
}`

const qualityPrompt = `Review this transcript processing result and validate quality:

Original segment:
%s

Processed segment:
%s

Check for:
1. Content completeness (no information loss)
2. Speaker attribution accuracy
3. Grammar improvement
4. Context preservation
5. Formatting quality

Return ONLY a JSON object:
{
    "quality_score": 0-100,
    "issues_found": ["list of any issues"],
    "content_loss_detected": true/false,
    "recommendations": ["improvement suggestions"]
}`

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
