package schema

import "strings"

// suggestionTopic pairs the words that signal a topic with the column advice
// for it. Scanned in declaration order; order is part of the contract.
type suggestionTopic struct {
	keywords    []string
	suggestions []string
}

var suggestionTopics = []suggestionTopic{
	{
		keywords: []string{"morte", "morreu", "óbito", "falecimento"},
		suggestions: []string{
			"MORTE = 1 (para contar óbitos)",
			"CID_MORTE (para causa da morte, quando MORTE = 1)",
		},
	},
	{
		keywords: []string{"cidade", "porto alegre", "santa maria"},
		suggestions: []string{
			"CIDADE_RESIDENCIA_PACIENTE (nome da cidade - PREFERIDO)",
			"MUNIC_RES (código IBGE - menos preciso)",
		},
	},
	{
		keywords:    []string{"idade", "anos"},
		suggestions: []string{"IDADE (idade em anos)"},
	},
	{
		keywords:    []string{"sexo", "masculino", "feminino"},
		suggestions: []string{"SEXO (1=Masculino, 3=Feminino)"},
	},
	{
		keywords:    []string{"estado", "uf", "região"},
		suggestions: []string{"UF_RESIDENCIA_PACIENTE (sigla do estado)"},
	},
	{
		keywords:    []string{"uti", "intensive"},
		suggestions: []string{"UTI_MES_TO (dias em UTI, 0=não ficou)"},
	},
	{
		keywords:    []string{"custo", "valor"},
		suggestions: []string{"VAL_TOT (valor total em Reais)"},
	},
}

// ColumnSuggestions scans a user question for topic keywords and returns the
// matching column advice, in table order, each entry at most once.
func ColumnSuggestions(intentText string) []string {
	lower := strings.ToLower(intentText)

	var out []string
	seen := make(map[string]bool)
	for _, topic := range suggestionTopics {
		matched := false
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, s := range topic.suggestions {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
