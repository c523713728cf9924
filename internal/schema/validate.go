package schema

import "strings"

// cityNameKeywords are fragments of the city names the dataset documentation
// calls out; seeing one next to a MUNIC_RES filter means the author wanted a
// city but filtered by code.
var cityNameKeywords = []string{"PORTO", "SANTA", "CAXIAS"}

// knownCityCodes are the IBGE codes the business rules single out
// (431490 = Porto Alegre, 430300 = Santa Maria).
var knownCityCodes = []string{"431490", "430300"}

// ValidateQuerySemantics checks a SQL string against the known domain
// pitfalls. Pure substring analysis, case-insensitive, fixed check order;
// it never fails, whatever the input. Issues mark queries that will return
// wrong numbers; suggestions are style advice and leave IsValid untouched.
func ValidateQuerySemantics(query string) Validation {
	up := strings.ToUpper(query)
	var issues, suggestions []string

	// Counting deaths through the cause-of-death column undercounts:
	// CID_MORTE is not filled for every death.
	if strings.Contains(up, "CID_MORTE > 0") {
		issues = append(issues, "Usando CID_MORTE > 0 para contar mortes (incorreto)")
		suggestions = append(suggestions, "Use 'MORTE = 1' para contar óbitos")
	}

	// City filtered by IBGE code while a city name sits in the query.
	geoFlagged := false
	if strings.Contains(up, "MUNIC_RES =") && containsAny(up, cityNameKeywords) {
		issues = append(issues, "Usando código IBGE para filtrar cidade (pode ser impreciso)")
		suggestions = append(suggestions, "Use 'CIDADE_RESIDENCIA_PACIENTE = nome_cidade' para maior precisão")
		geoFlagged = true
	}

	// Same intent, but only the code appears. Advice rather than an issue:
	// the code form is legal, just less precise than the name.
	if !geoFlagged && strings.Contains(up, "MUNIC_RES =") && containsAny(up, knownCityCodes) {
		suggestions = append(suggestions, "Código IBGE de cidade conhecida - prefira CIDADE_RESIDENCIA_PACIENTE = 'Nome da Cidade' para maior precisão")
	}

	// SEXO uses DATASUS codes 1 and 3; 2 matches nothing.
	if strings.Contains(up, "SEXO = 2") {
		issues = append(issues, "SEXO = 2 não existe no padrão DATASUS")
		suggestions = append(suggestions, "Use SEXO = 1 (Masculino) ou SEXO = 3 (Feminino)")
	}

	if strings.Contains(up, "MORTE > 0") {
		suggestions = append(suggestions, "Considere usar 'MORTE = 1' ao invés de 'MORTE > 0' para maior especificidade")
	}

	// Dates are packed YYYYMMDD integers; LIKE treats them as text.
	if (strings.Contains(up, "DT_INTER") || strings.Contains(up, "DT_SAIDA")) && strings.Contains(up, "LIKE") {
		suggestions = append(suggestions, "Datas estão no formato YYYYMMDD - considere usar comparações numéricas")
	}

	return Validation{
		Query:       query,
		Issues:      issues,
		Suggestions: suggestions,
		IsValid:     len(issues) == 0,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
