package agent

import (
	"reflect"
	"strings"
	"testing"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{
			name:      "strips injection characters",
			input:     `quantas mortes'; DROP TABLE x--`,
			maxLength: 500,
			want:      "quantas mortes DROP TABLE x--",
		},
		{
			name:      "strips double quotes and backslashes",
			input:     `ele disse "oi"\agora`,
			maxLength: 500,
			want:      "ele disse oiagora",
		},
		{
			name:      "empty input",
			input:     "",
			maxLength: 500,
			want:      "",
		},
		{
			name:      "plain question untouched",
			input:     "Quantas mortes houve em Porto Alegre?",
			maxLength: 500,
			want:      "Quantas mortes houve em Porto Alegre?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeInput(tt.input, tt.maxLength)
			if got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeInputCapsLengthInRunes(t *testing.T) {
	input := strings.Repeat("ç", 510)
	got := SanitizeInput(input, 500)
	if n := len([]rune(got)); n != 500 {
		t.Errorf("expected 500 runes, got %d", n)
	}
}

func TestIsSafeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"plain select", "SELECT COUNT(*) FROM dados_sus3", true},
		{"drop", "DROP TABLE dados_sus3", false},
		{"lowercase delete", "select 1; delete from dados_sus3", false},
		{"insert", "INSERT INTO dados_sus3 VALUES (1)", false},
		{"truncate", "TRUNCATE dados_sus3", false},
		{"keyword inside identifier still blocks", "SELECT * FROM updates", false},
		{"pragma read", "SELECT COUNT(*) FROM pragma_table_info('dados_sus3')", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSafeQuery(tt.query)
			if got != tt.want {
				t.Errorf("IsSafeQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestIsSelectQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"select", "SELECT 1", true},
		{"lowercase with spaces", "  select count(*) from dados_sus3", true},
		{"cte", "WITH x AS (SELECT 1) SELECT * FROM x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSelectQuery(tt.query)
			if got != tt.want {
				t.Errorf("IsSelectQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "fenced sql block deduplicated against bare match",
			response: "Aqui está:\n```sql\nSELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1\n```\n",
			want:     []string{"SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1"},
		},
		{
			name:     "bare statement keeps its semicolon",
			response: "Use SELECT COUNT(*) FROM dados_sus3; para contar",
			want:     []string{"SELECT COUNT(*) FROM dados_sus3;"},
		},
		{
			name:     "multiline fenced query comes before its truncated echo",
			response: "```sql\nSELECT UF_RESIDENCIA_PACIENTE, COUNT(*)\nFROM dados_sus3\nGROUP BY UF_RESIDENCIA_PACIENTE\n```",
			want: []string{
				"SELECT UF_RESIDENCIA_PACIENTE, COUNT(*)\nFROM dados_sus3\nGROUP BY UF_RESIDENCIA_PACIENTE",
				"SELECT UF_RESIDENCIA_PACIENTE, COUNT(*)",
			},
		},
		{
			name:     "prose only",
			response: "Não sei responder essa pergunta.",
			want:     nil,
		},
		{
			name:     "repeated statements collapse",
			response: "SELECT 1\nSELECT 1\n",
			want:     []string{"SELECT 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSQL(tt.response)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSQL(%q) = %#v, want %#v", tt.response, got, tt.want)
			}
		})
	}
}

func TestEstimateComplexity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "bare count",
			query: "SELECT COUNT(*) FROM dados_sus3",
			want:  "simples",
		},
		{
			name:  "grouped and ordered",
			query: "SELECT UF_RESIDENCIA_PACIENTE, COUNT(*) FROM dados_sus3 GROUP BY UF_RESIDENCIA_PACIENTE ORDER BY 2 DESC",
			want:  "média",
		},
		{
			name:  "join with having",
			query: "SELECT a.UF, COUNT(*) FROM dados_sus3 a JOIN cidades c ON a.MUNIC_RES = c.codigo GROUP BY a.UF HAVING COUNT(*) > 10 ORDER BY 2",
			want:  "complexa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateComplexity(tt.query)
			if got != tt.want {
				t.Errorf("EstimateComplexity(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestFormatResults(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		got := FormatResults([]string{"MORTE"}, nil)
		if got != "Nenhum resultado encontrado." {
			t.Errorf("FormatResults() = %q", got)
		}
	})

	t.Run("single value", func(t *testing.T) {
		got := FormatResults([]string{"COUNT(*)"}, [][]string{{"58655"}})
		if got != "Resultado: 58655" {
			t.Errorf("FormatResults() = %q", got)
		}
	})

	t.Run("table", func(t *testing.T) {
		got := FormatResults(
			[]string{"UF_RESIDENCIA_PACIENTE", "TOTAL"},
			[][]string{{"RS", "100"}, {"SC", "50"}},
		)
		want := "UF_RESIDENCIA_PACIENTE | TOTAL\nRS | 100\nSC | 50"
		if got != want {
			t.Errorf("FormatResults() = %q, want %q", got, want)
		}
	})

	t.Run("long output truncated", func(t *testing.T) {
		rows := make([][]string, 25)
		for i := range rows {
			rows[i] = []string{"Cidade"}
		}
		got := FormatResults([]string{"CIDADE_RESIDENCIA_PACIENTE"}, rows)
		if !strings.Contains(got, "... e mais 5 linhas") {
			t.Errorf("expected truncation notice, got %q", got)
		}
		if n := len(strings.Split(got, "\n")); n != 22 {
			t.Errorf("expected 22 lines (header + 20 rows + notice), got %d", n)
		}
	})
}
