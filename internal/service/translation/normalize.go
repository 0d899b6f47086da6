package translation

import "github.com/svadhyaya/padaccheda-backend/internal/domain"

// Normalize reduces a passage to canonical IAST.
//
// Mixed-script input fails with domain.ErrMixedScript — a user-input error,
// never retried. Devanagari input goes through the injected converter. IAST
// input passes through byte-identical.
func (s *Service) Normalize(text string) (domain.Normalization, error) {
	switch domain.ClassifyScript(text) {
	case domain.ScriptMixed:
		return domain.Normalization{}, domain.ErrMixedScript
	case domain.ScriptDevanagari:
		return domain.Normalization{
			IAST:           s.convert(text),
			OriginalScript: domain.ScriptDevanagari,
		}, nil
	default:
		return domain.Normalization{
			IAST:           text,
			OriginalScript: domain.ScriptIAST,
		}, nil
	}
}
