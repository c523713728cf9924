// Package cid resolves colloquial pt-BR disease terms to CID-10 (ICD-10)
// category ranges and rewrites user questions so the generated SQL filters
// DIAG_PRINC by an explicit range instead of trusting the language model to
// know the code for "pneumonia". The table is the curated hardcoded set;
// lookups fold case and diacritics so "respiratórias" and "respiratorias"
// resolve the same.
package cid

import "strings"

// Range is a CID-10 category interval, inclusive on both ends.
type Range struct {
	Start string
	End   string
}

// Condition renders the range as a SQL predicate on the diagnosis column.
func (r Range) Condition() string {
	return "(DIAG_PRINC >= '" + r.Start + "' AND DIAG_PRINC <= '" + r.End + "')"
}

// ranges maps folded condition keywords to CID-10 category ranges. Keys are
// unaccented lowercase; Lookup folds its input to match.
var ranges = map[string]Range{
	// Respiratórias
	"respiratorias":         {"J00", "J99"},
	"respiratoria":          {"J00", "J99"},
	"doenca respiratoria":   {"J00", "J99"},
	"doencas respiratorias": {"J00", "J99"},
	"aparelho respiratorio": {"J00", "J99"},
	"sistema respiratorio":  {"J00", "J99"},
	"pulmao":                {"J00", "J99"},
	"pulmoes":               {"J00", "J99"},
	"pulmonar":              {"J00", "J99"},
	"pulmonares":            {"J00", "J99"},
	"bronquio":              {"J00", "J99"},
	"bronquios":             {"J00", "J99"},
	"pneumonia":             {"J12", "J18"},
	"asma":                  {"J45", "J46"},
	"bronquite":             {"J20", "J42"},
	"dpoc":                  {"J44", "J44"},

	// Cardiovasculares
	"cardiovasculares": {"I00", "I99"},
	"cardiovascular":   {"I00", "I99"},
	"cardiacas":        {"I00", "I99"},
	"cardiaca":         {"I00", "I99"},
	"cardiaco":         {"I00", "I99"},
	"coracao":          {"I00", "I99"},
	"infarto":          {"I21", "I22"},
	"avc":              {"I60", "I69"},
	"hipertensao":      {"I10", "I15"},

	// Outras categorias importantes
	"diabetes":     {"E10", "E14"},
	"diabetica":    {"E10", "E14"},
	"diabetico":    {"E10", "E14"},
	"cancer":       {"C00", "D49"},
	"tumor":        {"C00", "D49"},
	"neoplasia":    {"C00", "D49"},
	"renal":        {"N00", "N99"},
	"renais":       {"N00", "N99"},
	"rim":          {"N00", "N99"},
	"rins":         {"N00", "N99"},
	"neurologicas": {"G00", "G99"},
	"neurologica":  {"G00", "G99"},
	"nervoso":      {"G00", "G99"},
	"digestivas":   {"K00", "K95"},
	"digestiva":    {"K00", "K95"},
	"mentais":      {"F00", "F99"},
	"mental":       {"F00", "F99"},
	"infecciosas":  {"A00", "B99"},
	"infecciosa":   {"A00", "B99"},
}

// Lookup resolves a condition term to its CID-10 range. The term is folded
// before the exact-match lookup; no partial matching happens here.
func Lookup(term string) (Range, bool) {
	r, ok := ranges[Fold(strings.TrimSpace(term))]
	return r, ok
}

// Terms returns how many condition keywords the table knows.
func Terms() int {
	return len(ranges)
}
