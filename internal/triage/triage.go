// Package triage decides, before any LLM call, whether a user question is one
// of the small closed set of high-frequency questions that a fixed aggregate
// query answers exactly. Recognized questions skip the language model
// entirely: the canned path is cheaper, faster, and immune to the model
// inventing the wrong predicate. Classification is a linear first-match scan
// over an ordered trigger list; declaration order is the tie-break and is
// part of the contract.
package triage

import "strings"

// Known intents. Everything unrecognized is IntentGeneral.
const (
	IntentColumnCount = "column_count"
	IntentRecordCount = "record_count"
	IntentDeathCount  = "death_count"
	IntentStateCount  = "state_count"
	IntentCityCount   = "city_count"
	IntentGeneral     = "general"
)

// Trigger matches a question when Phrase is contained in the lowercased text
// and With, when non-empty, is contained as well.
type Trigger struct {
	Phrase string
	With   string
	Intent string
}

// Decision is the classification outcome for one question.
type Decision struct {
	UseFallback bool
	Intent      string
	Reason      string
}

// triggers is scanned top to bottom; the first hit wins. Keep new entries
// grouped with their intent and mind the order.
var triggers = []Trigger{
	// Contagem de colunas
	{Phrase: "quantas colunas", With: "tem", Intent: IntentColumnCount},
	{Phrase: "colunas tem", With: "tabela", Intent: IntentColumnCount},
	{Phrase: "número de colunas", Intent: IntentColumnCount},
	{Phrase: "numero de colunas", Intent: IntentColumnCount},
	{Phrase: "how many columns", Intent: IntentColumnCount},
	{Phrase: "columns does", Intent: IntentColumnCount},

	// Contagem de registros
	{Phrase: "quantos registros", Intent: IntentRecordCount},
	{Phrase: "quantas linhas", Intent: IntentRecordCount},
	{Phrase: "número de registros", Intent: IntentRecordCount},
	{Phrase: "how many records", Intent: IntentRecordCount},
	{Phrase: "how many rows", Intent: IntentRecordCount},

	// Mortalidade
	{Phrase: "quantas mortes", Intent: IntentDeathCount},
	{Phrase: "quantos morreram", Intent: IntentDeathCount},
	{Phrase: "número de mortes", Intent: IntentDeathCount},
	{Phrase: "total de mortes", Intent: IntentDeathCount},
	{Phrase: "how many deaths", Intent: IntentDeathCount},

	// Geografia simples
	{Phrase: "quantos estados", Intent: IntentStateCount},
	{Phrase: "quantas cidades", Intent: IntentCityCount},
	{Phrase: "estados diferentes", Intent: IntentStateCount},
	{Phrase: "cidades diferentes", Intent: IntentCityCount},
}

// Classify maps a raw user question to a Decision. Pure and total: any
// string, including empty, yields a well-formed result. Matching is done on
// the lowercased question; the trigger table carries accented and unaccented
// spellings itself, so no diacritic folding happens here.
func Classify(question string) Decision {
	lower := strings.ToLower(question)

	for _, trig := range triggers {
		if !strings.Contains(lower, trig.Phrase) {
			continue
		}
		if trig.With != "" && !strings.Contains(lower, trig.With) {
			continue
		}
		return Decision{
			UseFallback: true,
			Intent:      trig.Intent,
			Reason:      "Padrão detectado: " + trig.Phrase,
		}
	}

	return Decision{UseFallback: false, Intent: IntentGeneral}
}

// Triggers returns a copy of the trigger table in scan order.
func Triggers() []Trigger {
	out := make([]Trigger, len(triggers))
	copy(out, triggers)
	return out
}
