package schema

import "strings"

// ContextualPrompt renders the fixed schema briefing injected into every LLM
// prompt. Output is byte-identical across calls: the sections are assembled
// from the ordered tables in declaration order, never from map iteration.
func ContextualPrompt() string {
	morte := columnDocs["MORTE"]
	cidMorte := columnDocs["CID_MORTE"]
	sexo := columnDocs["SEXO"]

	var b strings.Builder

	b.WriteString("DOCUMENTAÇÃO DO SCHEMA - DADOS SUS (SIH/SUS):\n\n")
	b.WriteString("CAMPOS IMPORTANTES PARA ANÁLISES:\n\n")

	b.WriteString("1. MORTALIDADE:\n")
	b.WriteString("   - MORTE: ")
	b.WriteString(renderValues(morte.ValidValues))
	b.WriteString("\n")
	b.WriteString("   - CID_MORTE: ")
	b.WriteString(cidMorte.Description)
	b.WriteString("\n")
	b.WriteString("   - REGRA: Para contar mortes, use \"MORTE = 1\", NÃO \"MORTE > 0\" ou \"CID_MORTE > 0\"\n\n")

	b.WriteString("2. GEOGRAFIA:\n")
	b.WriteString("   - CIDADE_RESIDENCIA_PACIENTE: Nome da cidade (use para filtrar por cidade)\n")
	b.WriteString("   - MUNIC_RES: Código IBGE (431490=Porto Alegre, 430300=Santa Maria)\n")
	b.WriteString("   - UF_RESIDENCIA_PACIENTE: Sigla do estado\n")
	b.WriteString("   - REGRA: Para perguntas sobre cidades, use CIDADE_RESIDENCIA_PACIENTE = 'Nome'\n\n")

	b.WriteString("3. SEXO:\n")
	b.WriteString("   - ")
	b.WriteString(renderValues(sexo.ValidValues))
	b.WriteString("\n")
	b.WriteString("   - ATENÇÃO: Não é 1=M, 2=F - é 1=M, 3=F\n\n")

	b.WriteString("4. UTI:\n")
	b.WriteString("   - UTI_MES_TO = 0: Não ficou em UTI\n")
	b.WriteString("   - UTI_MES_TO > 0: Número de dias em UTI\n\n")

	b.WriteString("QUERIES CORRETAS:\n")
	b.WriteString("- Mortes totais: SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1\n")
	b.WriteString("- Mortes por cidade: SELECT COUNT(*) FROM dados_sus3 WHERE CIDADE_RESIDENCIA_PACIENTE = 'Nome' AND MORTE = 1\n\n")

	b.WriteString("EVITAR:\n")
	b.WriteString("- SELECT COUNT(*) FROM dados_sus3 WHERE CID_MORTE > 0  (incorreto para mortes!)\n")
	b.WriteString("- SELECT COUNT(*) FROM dados_sus3 WHERE MUNIC_RES = codigo AND MORTE > 0  (use nome da cidade e MORTE = 1!)\n")

	return b.String()
}

// renderValues flattens ordered value/meaning pairs into "v = meaning; ...".
func renderValues(values []ValueMeaning) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Value + " = " + v.Meaning
	}
	return strings.Join(parts, "; ")
}

// BuildQueryPrompt assembles the full prompt for one user question: pt-BR
// instructions, the schema briefing, column suggestions for the question, and
// the question itself. Deterministic for a given question.
func BuildQueryPrompt(question string) string {
	var b strings.Builder

	b.WriteString("Você é um assistente especialista em SQL que SEMPRE responde em português brasileiro.\n\n")
	b.WriteString("INSTRUÇÕES IMPORTANTES:\n")
	b.WriteString("- SEMPRE responda em português brasileiro (pt-BR)\n")
	b.WriteString("- Seja claro, educado e direto nas respostas\n")
	b.WriteString("- Quando perguntado sobre \"colunas\", use: SELECT COUNT(*) FROM pragma_table_info('dados_sus3')\n")
	b.WriteString("- Quando perguntado sobre \"registros\" ou \"linhas\", use: SELECT COUNT(*) FROM dados_sus3\n")
	b.WriteString("- Responda com a query SQL dentro de um bloco ```sql e uma explicação breve\n\n")

	b.WriteString("CONTEXTO DO BANCO DE DADOS:\n")
	b.WriteString("Banco com dados do SUS (Sistema Único de Saúde) brasileiro. ")
	b.WriteString("A tabela principal é 'dados_sus3', com internações hospitalares.\n\n")

	b.WriteString(ContextualPrompt())

	if suggestions := ColumnSuggestions(question); len(suggestions) > 0 {
		b.WriteString("\nSUGESTÕES DE COLUNAS PARA SUA PERGUNTA:\n")
		for _, s := range suggestions {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nPERGUNTA: ")
	b.WriteString(question)
	b.WriteString("\n")

	return b.String()
}
