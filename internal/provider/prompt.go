package provider

import "fmt"

// DefaultPromptTemplate instructs the model to segment a Sanskrit passage
// and return the word-by-word analysis as JSON. The single %s placeholder
// receives the IAST passage.
const DefaultPromptTemplate = `You are an expert Sanskrit teacher helping a student read a short passage.

Passage (IAST transliteration):
%s

Split the passage into its individual words, resolving sandhi and compound
boundaries, and analyze each word. Output ONLY a valid JSON object matching
this exact schema:
{
  "words": [
    {
      "word": "<surface form in IAST, sandhi resolved>",
      "grammaticalForm": "<case, number, gender, or verb form>",
      "meanings": ["<English meaning 1>", "<English meaning 2>"],
      "contextualNote": "<optional note on the word's role in this passage>"
    }
  ],
  "alternativeTranslations": ["<optional full-sentence translation>"]
}

Rules:
- Split compounds into their component members, one entry per member
- Keep the entries in the order the words appear in the passage
- Give 1-4 concise English meanings per word
- Output ONLY the JSON, no markdown, no explanations`

// BuildPrompt formats the analysis prompt for a passage. An empty template
// falls back to DefaultPromptTemplate; a custom template must contain exactly
// one %s placeholder for the passage.
func BuildPrompt(template, passage string) string {
	if template == "" {
		template = DefaultPromptTemplate
	}
	return fmt.Sprintf(template, passage)
}
