package cid

import (
	"strings"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Respiratórias", "respiratorias"},
		{"HIPERTENSÃO", "hipertensao"},
		{"coração", "coracao"},
		{"pneumonia", "pneumonia"},
		{"DOENÇA", "doenca"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		term      string
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{term: "pneumonia", wantStart: "J12", wantEnd: "J18", wantOK: true},
		{term: "respiratórias", wantStart: "J00", wantEnd: "J99", wantOK: true},
		{term: "Hipertensão", wantStart: "I10", wantEnd: "I15", wantOK: true},
		{term: "AVC", wantStart: "I60", wantEnd: "I69", wantOK: true},
		{term: "infarto", wantStart: "I21", wantEnd: "I22", wantOK: true},
		{term: "diabetes", wantStart: "E10", wantEnd: "E14", wantOK: true},
		{term: "câncer", wantStart: "C00", wantEnd: "D49", wantOK: true},
		{term: "doença respiratória", wantStart: "J00", wantEnd: "J99", wantOK: true},
		{term: "  asma  ", wantStart: "J45", wantEnd: "J46", wantOK: true},
		{term: "gripe do bem", wantOK: false},
		{term: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			r, ok := Lookup(tt.term)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.term, ok, tt.wantOK)
			}
			if ok && (r.Start != tt.wantStart || r.End != tt.wantEnd) {
				t.Errorf("Lookup(%q) = %s-%s, want %s-%s", tt.term, r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRangeCondition(t *testing.T) {
	r := Range{Start: "J12", End: "J18"}
	want := "(DIAG_PRINC >= 'J12' AND DIAG_PRINC <= 'J18')"
	if got := r.Condition(); got != want {
		t.Errorf("Condition() = %q, want %q", got, want)
	}
}

func TestEnrich(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		wantRewrite bool
		wantSubstr  string
	}{
		{
			name:        "admissions by pneumonia",
			question:    "Quantas internações por pneumonia?",
			wantRewrite: true,
			wantSubstr:  "(DIAG_PRINC >= 'J12' AND DIAG_PRINC <= 'J18')",
		},
		{
			name:        "cases of respiratory disease with accents",
			question:    "casos de doença respiratória",
			wantRewrite: true,
			wantSubstr:  "(DIAG_PRINC >= 'J00' AND DIAG_PRINC <= 'J99')",
		},
		{
			name:        "disease phrasing becomes a case count",
			question:    "doenças de hipertensão",
			wantRewrite: true,
			wantSubstr:  "Qual o número total de casos",
		},
		{
			name:        "admissions intent keeps its accented spelling",
			question:    "internações com asma",
			wantRewrite: true,
			wantSubstr:  "Qual o número total de internações",
		},
		{
			name:        "last word fallback",
			question:    "casos de cancer de pulmao",
			wantRewrite: true,
			wantSubstr:  "(DIAG_PRINC >= 'J00' AND DIAG_PRINC <= 'J99')",
		},
		{
			name:        "unknown disease stays untouched",
			question:    "casos de resfriado comum",
			wantRewrite: false,
		},
		{
			name:        "no disease phrasing",
			question:    "Quantas mortes houve em 2017?",
			wantRewrite: false,
		},
		{
			name:        "empty question",
			question:    "",
			wantRewrite: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rewritten := Enrich(tt.question)

			if rewritten != tt.wantRewrite {
				t.Fatalf("Enrich(%q) rewritten = %v, want %v (got %q)", tt.question, rewritten, tt.wantRewrite, got)
			}
			if !tt.wantRewrite {
				if got != tt.question {
					t.Errorf("Enrich(%q) changed an unmatched question to %q", tt.question, got)
				}
				return
			}
			if !strings.Contains(got, tt.wantSubstr) {
				t.Errorf("Enrich(%q) = %q, missing %q", tt.question, got, tt.wantSubstr)
			}
			if !strings.Contains(got, "condição SQL") {
				t.Errorf("Enrich(%q) = %q, missing the SQL condition marker", tt.question, got)
			}
		})
	}
}
