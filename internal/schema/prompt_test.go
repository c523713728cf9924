package schema

import (
	"strings"
	"testing"
)

func TestContextualPromptDeterministic(t *testing.T) {
	first := ContextualPrompt()
	for i := 0; i < 5; i++ {
		if got := ContextualPrompt(); got != first {
			t.Fatalf("ContextualPrompt() changed between calls (iteration %d)", i)
		}
	}
}

func TestContextualPromptSections(t *testing.T) {
	prompt := ContextualPrompt()

	required := []string{
		"DOCUMENTAÇÃO DO SCHEMA - DADOS SUS (SIH/SUS)",
		"1. MORTALIDADE:",
		"2. GEOGRAFIA:",
		"3. SEXO:",
		"4. UTI:",
		"QUERIES CORRETAS:",
		"EVITAR:",
		`Para contar mortes, use "MORTE = 1", NÃO "MORTE > 0" ou "CID_MORTE > 0"`,
		"CIDADE_RESIDENCIA_PACIENTE = 'Nome'",
		"431490=Porto Alegre",
		"Não é 1=M, 2=F - é 1=M, 3=F",
		"SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1",
		"SELECT COUNT(*) FROM dados_sus3 WHERE CID_MORTE > 0",
	}

	for _, phrase := range required {
		if !strings.Contains(prompt, phrase) {
			t.Errorf("ContextualPrompt() missing %q", phrase)
		}
	}
}

func TestBuildQueryPrompt(t *testing.T) {
	question := "Quantas mortes por cidade?"
	prompt := BuildQueryPrompt(question)

	for _, phrase := range []string{
		"português brasileiro",
		"dados_sus3",
		"SUGESTÕES DE COLUNAS PARA SUA PERGUNTA:",
		"- MORTE = 1 (para contar óbitos)",
		"PERGUNTA: " + question,
	} {
		if !strings.Contains(prompt, phrase) {
			t.Errorf("BuildQueryPrompt(%q) missing %q", question, phrase)
		}
	}

	// Stable output for a fixed question.
	if prompt != BuildQueryPrompt(question) {
		t.Error("BuildQueryPrompt is not deterministic")
	}
}

func TestBuildQueryPromptWithoutSuggestions(t *testing.T) {
	prompt := BuildQueryPrompt("bom dia")
	if strings.Contains(prompt, "SUGESTÕES DE COLUNAS") {
		t.Error("suggestion section rendered for a question with no topic match")
	}
}
