package slides

import (
	"fmt"
	"strings"
)

// systemInstruction pins the provider to JSON-only slide output.
const systemInstruction = "You are a presentation expert that converts brainstorm notes into professional slide content. Always respond with valid JSON only."

// buildPrompt renders the per-frame summarization prompt. When aspiration is
// requested the provider is asked for one extra forward-looking sentence.
func buildPrompt(frameTitle string, notes []string, includeAspiration bool) string {
	var notesText strings.Builder
	for _, note := range notes {
		notesText.WriteString("- ")
		notesText.WriteString(note)
		notesText.WriteString("\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert presentation designer. Analyze the following brainstorm notes from a whiteboard frame titled %q and create professional slide content.

Notes:
%s
Return a JSON object with:
1. "title": A professional, concise headline for this slide (max 10 words)
2. "bullets": An array of 3-5 action-oriented bullet points that summarize and synthesize the brainstorm content
`, frameTitle, notesText.String())

	if includeAspiration {
		b.WriteString(`3. "aspiration": A single aspirational sentence describing where this workstream is headed
`)
	}

	b.WriteString(`
Requirements:
- Title should be punchy and capture the essence
- Bullets should be concise (max 15 words each)
- Transform messy brainstorm ideas into clear, professional language
- Focus on actionable insights

Respond ONLY with valid JSON, no markdown or extra text.`)

	return b.String()
}
