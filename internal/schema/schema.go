// Package schema is the knowledge base for the dados_sus3 dataset (SIH/SUS
// hospital admissions): per-column documentation, domain business rules, the
// contextual briefing injected into LLM prompts, and advisory helpers that
// validate SQL against known pitfalls and suggest columns for a question.
// Everything here is built from fixed tables at init and is read-only after
// that, so all functions are safe for concurrent use.
package schema

import (
	"sort"
	"strings"
)

// TableName is the single table every query in this dataset targets.
const TableName = "dados_sus3"

const (
	undocumentedDescription = "Coluna não documentada"
	unknownType             = "Desconhecido"
)

// ColumnInfo returns the documentation for a column, matching case
// insensitively. Unknown columns return a sentinel doc instead of an error so
// a bad column name never aborts the pipeline.
func ColumnInfo(name string) ColumnDoc {
	if doc, ok := columnDocs[strings.ToUpper(name)]; ok {
		return doc
	}
	return ColumnDoc{
		Name:        name,
		Description: undocumentedDescription,
		Type:        unknownType,
	}
}

// Documented reports whether the column has real documentation behind it.
func Documented(name string) bool {
	_, ok := columnDocs[strings.ToUpper(name)]
	return ok
}

// ColumnNames returns every documented column name, sorted.
func ColumnNames() []string {
	names := make([]string, 0, len(columnDocs))
	for name := range columnDocs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RuleTopics returns the business-rule topics in presentation order.
func RuleTopics() []string {
	topics := make([]string, len(ruleTopics))
	copy(topics, ruleTopics)
	return topics
}

// Rules returns the business rules for a topic, or nil for unknown topics.
func Rules(topic string) []string {
	rules := businessRules[strings.ToLower(topic)]
	out := make([]string, len(rules))
	copy(out, rules)
	return out
}

// MortalityInfo returns the declarative guide for counting deaths: the
// canonical queries and the anti-patterns that look right but miscount.
// Reference data only; nothing here touches the database.
func MortalityInfo() MortalityGuide {
	return MortalityGuide{
		PrimaryField: "MORTE",
		Description:  "Use MORTE = 1 para contar óbitos",
		CauseField:   "CID_MORTE",
		CorrectQueries: []QueryExample{
			{Name: "total_mortes", SQL: "SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1"},
			{Name: "taxa_mortalidade", SQL: "SELECT (COUNT(CASE WHEN MORTE = 1 THEN 1 END) * 100.0) / COUNT(*) FROM dados_sus3"},
			{Name: "mortes_por_estado", SQL: "SELECT UF_RESIDENCIA_PACIENTE, COUNT(*) FROM dados_sus3 WHERE MORTE = 1 GROUP BY UF_RESIDENCIA_PACIENTE"},
			{Name: "mortes_por_cidade", SQL: "SELECT CIDADE_RESIDENCIA_PACIENTE, COUNT(*) FROM dados_sus3 WHERE MORTE = 1 GROUP BY CIDADE_RESIDENCIA_PACIENTE"},
		},
		AntiPatterns: []AntiPattern{
			{
				SQL:         "SELECT COUNT(*) FROM dados_sus3 WHERE CID_MORTE > 0",
				Explanation: "Não conta todas as mortes (causa pode não estar preenchida)",
			},
			{
				SQL:         "SELECT COUNT(*) FROM dados_sus3 WHERE MUNIC_RES = codigo AND MORTE > 0",
				Explanation: "Use nome da cidade e MORTE = 1",
			},
		},
	}
}
