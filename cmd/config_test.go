package cmd

import (
	"testing"
)

func goodSettings() settings {
	var s settings
	s.AI.Provider = "ollama"
	s.AI.Model = "llama3"
	s.AI.Temperature = 0.1
	s.AI.TopP = 0.9
	s.AI.NumPredict = 2048
	s.Database.URI = "sqlite:///sus_data.db"
	s.Database.SampleRows = 3
	s.Agent.MaxIterations = 10
	return s
}

func TestValidateSettingsAcceptsDefaults(t *testing.T) {
	if issues := validateSettings(goodSettings()); len(issues) != 0 {
		t.Errorf("Expected no issues for default settings, got %v", issues)
	}
}

func TestValidateSettingsReportsProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*settings)
		want   string
	}{
		{
			name:   "missing model name",
			mutate: func(s *settings) { s.AI.Model = "" },
			want:   "Nome do modelo não configurado",
		},
		{
			name:   "temperature above range",
			mutate: func(s *settings) { s.AI.Temperature = 1.5 },
			want:   "Temperature deve estar entre 0 e 1",
		},
		{
			name:   "temperature below range",
			mutate: func(s *settings) { s.AI.Temperature = -0.1 },
			want:   "Temperature deve estar entre 0 e 1",
		},
		{
			name:   "missing database uri",
			mutate: func(s *settings) { s.Database.URI = "" },
			want:   "URI do banco de dados não configurada",
		},
		{
			name:   "non positive max iterations",
			mutate: func(s *settings) { s.Agent.MaxIterations = 0 },
			want:   "Max iterations deve ser maior que 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := goodSettings()
			tt.mutate(&s)

			issues := validateSettings(s)
			if len(issues) != 1 {
				t.Fatalf("Expected exactly one issue, got %v", issues)
			}
			if issues[0] != tt.want {
				t.Errorf("Expected issue %q, got %q", tt.want, issues[0])
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"env var name passes through", "OPENAI_API_KEY", "OPENAI_API_KEY"},
		{"gemini env var passes through", "GEMINI_API_KEY", "GEMINI_API_KEY"},
		{"literal key is masked", "sk-proj-abc123", "********"},
		{"lowercase literal is masked", "minha-chave", "********"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskKey(tt.in); got != tt.want {
				t.Errorf("maskKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
