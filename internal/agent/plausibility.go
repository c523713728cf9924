package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/susql/susql/internal/triage"
)

// Plausibility is the verdict on whether an answer matches what the question
// asked for. When invalid, Correction names the triage intent to rerun.
type Plausibility struct {
	IsValid    bool
	Issue      string
	Correction string
	WrongQuery string
}

var (
	columnQuestionWords = []string{"quantas colunas", "colunas tem", "número de colunas", "how many columns"}
	recordQuestionWords = []string{"quantos registros", "quantas linhas", "how many records", "how many rows"}
	digitRun            = regexp.MustCompile(`\d+`)
)

func hasAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// firstNumber extracts the first digit run of the answer after dropping
// thousands separators.
func firstNumber(answer string) (int64, bool) {
	cleaned := strings.NewReplacer(",", "", ".", "").Replace(answer)
	m := digitRun.FindString(cleaned)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckPlausibility cross-checks the answer and the executed queries against
// the question. The table has 18 columns and tens of thousands of rows, so a
// column question answered with a record-sized number (or via a query that
// counts rows) almost always means the model confused the two counts.
func CheckPlausibility(question, answer string, executedQueries []string) Plausibility {
	lower := strings.ToLower(question)

	if hasAny(lower, columnQuestionWords) {
		if n, ok := firstNumber(answer); ok && n > 50 {
			return Plausibility{
				Issue:      fmt.Sprintf("Agente reportou %d colunas, mas isso parece ser número de registros", n),
				Correction: triage.IntentColumnCount,
			}
		}
	} else if hasAny(lower, recordQuestionWords) {
		if n, ok := firstNumber(answer); ok && n < 100 {
			return Plausibility{
				Issue:      fmt.Sprintf("Agente reportou %d registros, mas isso parece muito baixo", n),
				Correction: triage.IntentRecordCount,
			}
		}
	}

	for _, q := range executedQueries {
		up := strings.ToUpper(q)

		if hasAny(lower, columnQuestionWords) {
			if strings.Contains(up, "COUNT(*) FROM DADOS_SUS3") && !strings.Contains(up, "PRAGMA_TABLE_INFO") {
				return Plausibility{
					Issue:      "Query conta registros ao invés de colunas",
					Correction: triage.IntentColumnCount,
					WrongQuery: q,
				}
			}
		} else if hasAny(lower, recordQuestionWords) {
			if strings.Contains(up, "PRAGMA_TABLE_INFO") {
				return Plausibility{
					Issue:      "Query conta colunas ao invés de registros",
					Correction: triage.IntentRecordCount,
					WrongQuery: q,
				}
			}
		}
	}

	return Plausibility{IsValid: true}
}
