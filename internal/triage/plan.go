package triage

import (
	"fmt"
	"strconv"
	"strings"
)

// Plan is the canned answer for a recognized intent: the exact SQL to run,
// a method tag for result reporting, and the pt-BR response template.
type Plan struct {
	Intent   string
	SQL      string
	Method   string
	Response string
	// Grouped renders the count with Brazilian thousands separators; used
	// for the counts that get large (records, deaths).
	Grouped bool
	// Note explains a schema correction the plan applies, when there is one.
	Note string
}

// plans maps each fallback intent to its canned query. The column-count SQL
// is the sqlite form; callers running against postgres or mysql swap in the
// dialect form from the store before executing.
var plans = map[string]Plan{
	IntentColumnCount: {
		Intent:   IntentColumnCount,
		SQL:      "SELECT COUNT(*) FROM pragma_table_info('dados_sus3');",
		Method:   "fallback_columns",
		Response: "A tabela dados_sus3 tem %s colunas.",
	},
	IntentRecordCount: {
		Intent:   IntentRecordCount,
		SQL:      "SELECT COUNT(*) FROM dados_sus3;",
		Method:   "fallback_records",
		Response: "A tabela dados_sus3 tem %s registros.",
		Grouped:  true,
	},
	IntentDeathCount: {
		Intent:   IntentDeathCount,
		SQL:      "SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1;",
		Method:   "fallback_deaths",
		Response: "Houve %s mortes registradas nos dados.",
		Grouped:  true,
		Note:     "Corrigido: usando MORTE = 1 ao invés de CID_MORTE > 0",
	},
	IntentStateCount: {
		Intent:   IntentStateCount,
		SQL:      "SELECT COUNT(DISTINCT UF_RESIDENCIA_PACIENTE) FROM dados_sus3;",
		Method:   "fallback_states",
		Response: "Existem %s estados diferentes nos dados.",
	},
	IntentCityCount: {
		Intent:   IntentCityCount,
		SQL:      "SELECT COUNT(DISTINCT CIDADE_RESIDENCIA_PACIENTE) FROM dados_sus3;",
		Method:   "fallback_cities",
		Response: "Existem %s cidades diferentes nos dados.",
	},
}

// PlanFor returns the canned plan for an intent. ok is false for
// IntentGeneral and anything else without a fast path.
func PlanFor(intent string) (Plan, bool) {
	p, ok := plans[intent]
	return p, ok
}

// Render fills the response template with the query result.
func (p Plan) Render(count int64) string {
	v := strconv.FormatInt(count, 10)
	if p.Grouped {
		v = groupDigits(v)
	}
	return fmt.Sprintf(p.Response, v)
}

// groupDigits inserts Brazilian thousands separators: 58655 -> "58.655".
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		s = "-" + s
	}
	return s
}
