package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/susql/susql/internal/agent"
	"github.com/susql/susql/internal/schema"
	"github.com/susql/susql/internal/store"
)

// methodLabels maps internal answer methods to the labels shown in
// debug output.
var methodLabels = map[string]string{
	"agent":            "🤖 Agente LLM",
	"agent_sql_only":   "🤖 Agente LLM (somente SQL)",
	"fallback_columns": "📊 Fallback - Contagem de colunas",
	"fallback_records": "📈 Fallback - Contagem de registros",
	"fallback_cities":  "🏙️  Fallback - Contagem de cidades",
	"fallback_states":  "🗺️  Fallback - Contagem de estados",
	"fallback_deaths":  "💀 Fallback - Contagem de mortes",
}

// renderResult prints an answer the way the interactive interface does.
// SQL queries, method and validation advisories only appear when debug
// output is requested.
func renderResult(w io.Writer, result *agent.Result, showQueries, showValidations bool) {
	if !result.Success {
		fmt.Fprintf(w, "\n❌ %s\n", result.Response)
		if result.Method == "failed" {
			fmt.Fprintln(w, "💡 Tente usar o comando /exemplos para ver perguntas válidas.")
			fmt.Fprintln(w, "🔍 Ou reformule a pergunta de forma mais específica.")
		}
		return
	}

	fmt.Fprintf(w, "\n✅ Resposta: %s\n", result.Response)

	// Corrections always show, with or without debug.
	if result.AgentError != "" {
		fmt.Fprintf(w, "⚠️  Erro detectado no agente LLM: %s\n", result.AgentError)
		fmt.Fprintf(w, "❌ Resposta incorreta do agente: %s\n", result.WrongResponse)
		fmt.Fprintln(w, "✅ Correção aplicada automaticamente via fallback")
	}
	if result.FallbackReason != "" {
		fmt.Fprintf(w, "💡 Motivo: %s\n", result.FallbackReason)
	}
	if result.SchemaCorrection != "" {
		fmt.Fprintf(w, "🔧 %s\n", result.SchemaCorrection)
	}

	if showQueries {
		if len(result.ExecutedQueries) > 0 {
			fmt.Fprintln(w, "\n🐛 DEBUG - SQL Executado:")
			for i, query := range result.ExecutedQueries {
				fmt.Fprintf(w, "   %d. %s\n", i+1, query)
			}
		}
		if label, ok := methodLabels[result.Method]; ok {
			fmt.Fprintf(w, "   📋 Método: %s\n", label)
		} else {
			fmt.Fprintf(w, "   📋 Método: %s\n", result.Method)
		}
	}

	if showValidations {
		printed := false
		for _, validation := range result.Validations {
			if validation.IsValid {
				continue
			}
			if !printed {
				fmt.Fprintln(w, "\n⚠️  VALIDAÇÃO DE SCHEMA:")
				printed = true
			}
			for _, issue := range validation.Issues {
				fmt.Fprintf(w, "   ❌ %s\n", issue)
			}
			for _, suggestion := range validation.Suggestions {
				fmt.Fprintf(w, "   💡 %s\n", suggestion)
			}
		}
	}
}

// renderValidation prints a single advisory validation verdict.
func renderValidation(w io.Writer, validation schema.Validation) {
	fmt.Fprintln(w, "\n📋 RESULTADO DA VALIDAÇÃO:")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	if validation.IsValid {
		fmt.Fprintln(w, "✅ Query válida - nenhum problema detectado")
	} else {
		fmt.Fprintln(w, "⚠️  Problemas detectados:")
		for _, issue := range validation.Issues {
			fmt.Fprintf(w, "   ❌ %s\n", issue)
		}
	}

	if len(validation.Suggestions) > 0 {
		fmt.Fprintln(w, "\n💡 Sugestões:")
		for _, suggestion := range validation.Suggestions {
			fmt.Fprintf(w, "   • %s\n", suggestion)
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", 40))
}

// renderColumnDoc prints the documentation card for one column.
func renderColumnDoc(w io.Writer, name string) {
	fmt.Fprintf(w, "\n📋 INFORMAÇÕES DA COLUNA: %s\n", name)
	fmt.Fprintln(w, strings.Repeat("=", 50))

	if !schema.Documented(name) {
		fmt.Fprintf(w, "❌ Coluna '%s' não encontrada na documentação\n", name)
		fmt.Fprintln(w, "💡 Colunas disponíveis: MORTE, SEXO, CIDADE_RESIDENCIA_PACIENTE, UF_RESIDENCIA_PACIENTE, IDADE, etc.")
		fmt.Fprintln(w, strings.Repeat("=", 50))
		return
	}

	doc := schema.ColumnInfo(name)
	title := doc.Title
	if title == "" {
		title = doc.Name
	}
	fmt.Fprintf(w, "📖 Nome: %s\n", title)
	fmt.Fprintf(w, "📊 Tipo: %s\n", doc.Type)
	fmt.Fprintf(w, "📝 Descrição: %s\n", doc.Description)

	if len(doc.ValidValues) > 0 {
		fmt.Fprintln(w, "✅ Valores válidos:")
		for _, v := range doc.ValidValues {
			fmt.Fprintf(w, "   %s: %s\n", v.Value, v.Meaning)
		}
	}
	if len(doc.SpecialValues) > 0 {
		fmt.Fprintln(w, "⚠️  Valores especiais:")
		for _, v := range doc.SpecialValues {
			fmt.Fprintf(w, "   %s: %s\n", v.Value, v.Meaning)
		}
	}
	if len(doc.Examples) > 0 {
		examples := doc.Examples
		if len(examples) > 5 {
			examples = examples[:5]
		}
		fmt.Fprintf(w, "💡 Exemplos: %s\n", strings.Join(examples, ", "))
	}
	if doc.CommonUse != "" {
		fmt.Fprintf(w, "🎯 Uso comum: %s\n", doc.CommonUse)
	}
	if doc.Note != "" {
		fmt.Fprintf(w, "⚠️  Nota: %s\n", doc.Note)
	}
	if doc.ExampleQuery != "" {
		fmt.Fprintf(w, "📋 Query exemplo: %s\n", doc.ExampleQuery)
	}

	fmt.Fprintln(w, strings.Repeat("=", 50))
}

// renderDatabaseSummary prints per-table counts for the open database.
func renderDatabaseSummary(w io.Writer, summary store.Summary) {
	fmt.Fprintln(w, "\n📊 INFORMAÇÕES DO BANCO DE DADOS:")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	names := make([]string, 0, len(summary.Tables))
	for _, table := range summary.Tables {
		names = append(names, table.Name)
	}
	fmt.Fprintf(w, "📁 Tabelas disponíveis: %s\n", strings.Join(names, ", "))

	for _, table := range summary.Tables {
		fmt.Fprintf(w, "\n🏥 Tabela: %s\n", table.Name)
		fmt.Fprintf(w, "   📊 Registros: %s\n", groupInt(table.RecordCount))
		fmt.Fprintf(w, "   📋 Colunas: %d\n", table.ColumnCount)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 50))
}

// groupInt renders an integer with Brazilian thousands separators.
func groupInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		s = "-" + s
	}
	return s
}
