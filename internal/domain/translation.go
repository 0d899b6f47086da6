package domain

// Normalization is the outcome of reducing an input passage to canonical IAST.
type Normalization struct {
	// IAST is the passage in IAST transliteration. For input that was already
	// IAST this is the original text unchanged, byte for byte.
	IAST string
	// OriginalScript is the script the input arrived in: ScriptDevanagari or
	// ScriptIAST. Mixed input never produces a Normalization.
	OriginalScript ScriptType
}

// DictionaryDefinition is one definition from one dictionary source.
type DictionaryDefinition struct {
	Source     string `json:"source"`
	Definition string `json:"definition"`
}

// WordEntry is one word (or compound member) of the analyzed passage.
//
// Word, GrammaticalForm, and Meanings are populated by the semantic analysis
// stage. DictionaryDefinitions is set exactly once by the enrichment merge,
// or left nil when enrichment is skipped: nil means "no lookup happened",
// an empty non-nil slice means "looked up, nothing found".
type WordEntry struct {
	Word                  string                 `json:"word"`
	GrammaticalForm       string                 `json:"grammaticalForm,omitempty"`
	Meanings              []string               `json:"meanings"`
	DictionaryDefinitions []DictionaryDefinition `json:"dictionaryDefinitions,omitempty"`
	ContextualNote        *string                `json:"contextualNote,omitempty"`
}

// TranslationResult is the complete word-by-word breakdown of a passage.
// It is owned by the caller once returned; no component retains a reference.
type TranslationResult struct {
	// OriginalText holds the non-empty trimmed lines of the raw input.
	OriginalText []string `json:"originalText"`
	// IASTText holds the non-empty trimmed lines of the normalized input.
	IASTText []string `json:"iastText"`

	Words []WordEntry `json:"words"`

	AlternativeTranslations []string `json:"alternativeTranslations,omitempty"`

	// Warnings is present only when a collaborator degraded. An empty slice is
	// normalized to nil before the result leaves the orchestrator.
	Warnings []string `json:"warnings,omitempty"`
}

// Degraded reports whether the result was produced in degraded mode.
func (r *TranslationResult) Degraded() bool {
	return len(r.Warnings) > 0
}
