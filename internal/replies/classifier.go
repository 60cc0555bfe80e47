package replies

import "strings"

type Class int

const (
	Unrecognized Class = iota
	Affirmative
	Negative
)

func (c Class) String() string {
	switch c {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "unrecognized"
	}
}

// Keywords are matched as plain lowercase substrings, no stemming.
var (
	affirmativeKeywords = []string{
		"feito", "concluí", "conclui", "concluído", "concluido", "pronto",
		"ok", "sim", "terminei", "completei", "done", "finalizado", "treinei",
	}
	negativeKeywords = []string{
		"não", "nao", "pulei", "faltei", "não deu", "nao deu", "skipped", "couldn't",
	}
)

// Classify maps free reply text to a Class. Affirmative wins when both lists match.
func Classify(text string) Class {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Unrecognized
	}
	if containsAny(normalized, affirmativeKeywords) {
		return Affirmative
	}
	if containsAny(normalized, negativeKeywords) {
		return Negative
	}
	return Unrecognized
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
