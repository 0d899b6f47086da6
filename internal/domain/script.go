package domain

import "unicode"

// ScriptType classifies the writing system of an input passage.
type ScriptType string

const (
	ScriptDevanagari ScriptType = "devanagari"
	ScriptIAST       ScriptType = "iast"
	ScriptMixed      ScriptType = "mixed"
)

func (s ScriptType) IsValid() bool {
	switch s {
	case ScriptDevanagari, ScriptIAST, ScriptMixed:
		return true
	}
	return false
}

// Devanagari Unicode block boundaries.
const (
	devanagariBlockStart = 0x0900
	devanagariBlockEnd   = 0x097F
)

// ClassifyScript determines the writing system of text by scanning its code
// points. A code point in U+0900–U+097F counts as Devanagari; a code point in
// the Latin script (including the diacritic-bearing IAST letters) counts as
// Latin. Digits, punctuation, whitespace, and combining marks outside these
// sets are neutral and carry no evidence.
//
// As soon as both scripts have been seen the result is ScriptMixed; mixedness
// is irrecoverable. A string with only Devanagari evidence is
// ScriptDevanagari. Everything else, including the empty string, defaults to
// ScriptIAST.
func ClassifyScript(text string) ScriptType {
	var sawDevanagari, sawLatin bool

	for _, r := range text {
		switch {
		case r >= devanagariBlockStart && r <= devanagariBlockEnd:
			sawDevanagari = true
		case unicode.Is(unicode.Latin, r):
			sawLatin = true
		}
		if sawDevanagari && sawLatin {
			return ScriptMixed
		}
	}

	if sawDevanagari {
		return ScriptDevanagari
	}
	return ScriptIAST
}
