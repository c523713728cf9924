package schema

import (
	"reflect"
	"testing"
)

func TestColumnSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{
			// "cidade" also matches the age keyword "idade" as a substring,
			// so the age topic rides along. Matching is plain substring
			// containment, so that is the documented behavior.
			name:     "deaths by city returns both topics in table order",
			question: "quantas mortes por cidade",
			want: []string{
				"MORTE = 1 (para contar óbitos)",
				"CID_MORTE (para causa da morte, quando MORTE = 1)",
				"CIDADE_RESIDENCIA_PACIENTE (nome da cidade - PREFERIDO)",
				"MUNIC_RES (código IBGE - menos preciso)",
				"IDADE (idade em anos)",
			},
		},
		{
			name:     "age question",
			question: "Qual a média de idade dos pacientes?",
			want:     []string{"IDADE (idade em anos)"},
		},
		{
			name:     "state and cost keep table order regardless of question order",
			question: "qual o custo total por estado",
			want: []string{
				"UF_RESIDENCIA_PACIENTE (sigla do estado)",
				"VAL_TOT (valor total em Reais)",
			},
		},
		{
			name:     "icu question",
			question: "internações com UTI",
			want:     []string{"UTI_MES_TO (dias em UTI, 0=não ficou)"},
		},
		{
			name:     "sex keyword uppercase",
			question: "Distribuição por SEXO",
			want:     []string{"SEXO (1=Masculino, 3=Feminino)"},
		},
		{
			name:     "accented death keyword",
			question: "total de óbitos em 2017",
			want: []string{
				"MORTE = 1 (para contar óbitos)",
				"CID_MORTE (para causa da morte, quando MORTE = 1)",
			},
		},
		{
			name:     "no topic matches",
			question: "bom dia",
			want:     nil,
		},
		{
			name:     "empty question",
			question: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnSuggestions(tt.question)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ColumnSuggestions(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestColumnSuggestionsNoDuplicates(t *testing.T) {
	// Several keywords of the same topic in one question must not repeat the
	// topic's suggestions.
	got := ColumnSuggestions("mortes de quem morreu por falecimento")

	seen := make(map[string]int)
	for _, s := range got {
		seen[s]++
	}
	for s, n := range seen {
		if n > 1 {
			t.Errorf("suggestion %q returned %d times", s, n)
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (%v)", len(got), got)
	}
}
