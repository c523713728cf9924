package agent

import (
	"testing"

	"github.com/susql/susql/internal/triage"
)

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int64
		wantOK bool
	}{
		{"grouped digits", "A tabela tem 58.655 registros.", 58655, true},
		{"comma separator", "1,234 rows", 1234, true},
		{"plain", "Resultado: 18", 18, true},
		{"no digits", "Não foi possível contar.", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstNumber(tt.answer)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("firstNumber(%q) = (%d, %v), want (%d, %v)", tt.answer, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCheckPlausibility(t *testing.T) {
	tests := []struct {
		name           string
		question       string
		answer         string
		queries        []string
		wantValid      bool
		wantCorrection string
		wantWrongQuery bool
	}{
		{
			name:           "column question with record sized answer",
			question:       "Quantas colunas tem a tabela?",
			answer:         "Resultado: 58655",
			wantValid:      false,
			wantCorrection: triage.IntentColumnCount,
		},
		{
			name:      "column question with plausible answer",
			question:  "Quantas colunas tem a tabela?",
			answer:    "A tabela tem 18 colunas.",
			wantValid: true,
		},
		{
			name:           "record question with tiny answer",
			question:       "Quantos registros existem?",
			answer:         "Resultado: 42",
			wantValid:      false,
			wantCorrection: triage.IntentRecordCount,
		},
		{
			name:      "record question with plausible answer",
			question:  "Quantos registros existem?",
			answer:    "Resultado: 58655",
			wantValid: true,
		},
		{
			name:           "column question answered by row counting query",
			question:       "Quantas colunas tem a tabela?",
			answer:         "Resultado: 18",
			queries:        []string{"SELECT COUNT(*) FROM dados_sus3"},
			wantValid:      false,
			wantCorrection: triage.IntentColumnCount,
			wantWrongQuery: true,
		},
		{
			name:      "column question answered by pragma query",
			question:  "Quantas colunas tem a tabela?",
			answer:    "Resultado: 18",
			queries:   []string{"SELECT COUNT(*) FROM pragma_table_info('dados_sus3')"},
			wantValid: true,
		},
		{
			name:           "record question answered by pragma query",
			question:       "Quantos registros existem?",
			answer:         "Resultado: 58655",
			queries:        []string{"SELECT COUNT(*) FROM pragma_table_info('dados_sus3')"},
			wantValid:      false,
			wantCorrection: triage.IntentRecordCount,
			wantWrongQuery: true,
		},
		{
			name:      "column question without number in answer",
			question:  "Quantas colunas tem a tabela?",
			answer:    "Não consegui contar as colunas.",
			wantValid: true,
		},
		{
			name:      "unrelated question ignores numbers",
			question:  "Qual a idade média dos pacientes?",
			answer:    "Resultado: 45.3",
			queries:   []string{"SELECT AVG(IDADE) FROM dados_sus3"},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPlausibility(tt.question, tt.answer, tt.queries)
			if got.IsValid != tt.wantValid {
				t.Fatalf("CheckPlausibility() IsValid = %v, want %v (issue: %s)", got.IsValid, tt.wantValid, got.Issue)
			}
			if got.Correction != tt.wantCorrection {
				t.Errorf("Correction = %q, want %q", got.Correction, tt.wantCorrection)
			}
			if tt.wantWrongQuery && got.WrongQuery == "" {
				t.Error("expected WrongQuery to name the offending query")
			}
			if !tt.wantValid && got.Issue == "" {
				t.Error("invalid verdict should carry an issue message")
			}
		})
	}
}
