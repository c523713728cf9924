package cid

import (
	"fmt"
	"regexp"
	"strings"
)

// diseasePattern captures "<intent> <preposition> <term>" in the folded
// question, e.g. "internacoes por pneumonia" or "casos de doenca
// respiratoria". Folding happens before the match, so the pattern and the
// \w class only need ASCII.
var diseasePattern = regexp.MustCompile(`(casos|internacoes|mortes|doencas?) (?:com |de |do |da |pelo |pela |por )([\w\s]+)`)

// intentDisplay restores the pt-BR spelling of the captured intent for the
// rewritten question. Disease phrasings ("doenças de X") read as case counts.
var intentDisplay = map[string]string{
	"casos":       "casos",
	"internacoes": "internações",
	"mortes":      "mortes",
}

// Enrich rewrites a question about a known disease into one that carries the
// explicit CID-10 range condition, so the SQL the model writes filters
// DIAG_PRINC by range instead of guessing codes. Returns the question
// unchanged with false when no disease term resolves.
func Enrich(question string) (string, bool) {
	clean := strings.TrimRight(strings.TrimSpace(Fold(question)), ".?")

	m := diseasePattern.FindStringSubmatch(clean)
	if m == nil {
		return question, false
	}

	term := strings.TrimSpace(m[2])
	r, ok := Lookup(term)
	if !ok {
		// Multiword captures keep trailing qualifiers ("cancer de pulmao");
		// retry with the last word alone.
		if words := strings.Fields(term); len(words) > 1 {
			r, ok = Lookup(words[len(words)-1])
		}
	}
	if !ok {
		return question, false
	}

	intent := m[1]
	if strings.HasPrefix(intent, "doenca") {
		intent = "casos"
	}
	if display, known := intentDisplay[intent]; known {
		intent = display
	}

	rewritten := fmt.Sprintf("Qual o número total de %s que satisfazem a seguinte condição SQL: %s", intent, r.Condition())
	return rewritten, true
}
