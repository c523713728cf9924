package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/susql/susql/internal/schema"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [coluna]",
	Short: "Browse the dados_sus3 schema documentation",
	Long: `Browse the documentation for the dados_sus3 table: per-column
descriptions, business rules and the contextual prompt used by the AI.

Examples:
  susql schema                    # lista colunas documentadas
  susql schema MORTE              # documentação de uma coluna
  susql schema --rules            # regras de negócio por tópico
  susql schema --mortality        # guia de contagem de mortes
  susql schema --prompt           # prompt contextual completo
  susql schema --suggest "quantas mortes em porto alegre?"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showPrompt, _ := cmd.Flags().GetBool("prompt")
		showRules, _ := cmd.Flags().GetBool("rules")
		showMortality, _ := cmd.Flags().GetBool("mortality")
		suggestFor, _ := cmd.Flags().GetString("suggest")

		if showPrompt {
			fmt.Println(schema.ContextualPrompt())
			return nil
		}

		if showRules {
			printBusinessRules()
			return nil
		}

		if showMortality {
			printMortalityGuide()
			return nil
		}

		if suggestFor != "" {
			printSuggestions(suggestFor)
			return nil
		}

		if len(args) > 0 {
			renderColumnDoc(os.Stdout, strings.ToUpper(args[0]))
			return nil
		}

		printColumnList()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().Bool("prompt", false, "print the full contextual prompt used by the AI")
	schemaCmd.Flags().Bool("rules", false, "print the business rules grouped by topic")
	schemaCmd.Flags().Bool("mortality", false, "print the mortality counting guide")
	schemaCmd.Flags().String("suggest", "", "suggest columns for a question")
}

func printColumnList() {
	names := schema.ColumnNames()
	fmt.Printf("📋 Colunas documentadas da tabela %s (%d):\n\n", schema.TableName, len(names))
	for _, name := range names {
		doc := schema.ColumnInfo(name)
		fmt.Printf("  %-28s %s\n", name, doc.Title)
	}
	fmt.Println("\n💡 Use 'susql schema <COLUNA>' para ver a documentação completa")
}

func printBusinessRules() {
	fmt.Println("📋 REGRAS DE NEGÓCIO:")
	for _, topic := range schema.RuleTopics() {
		fmt.Printf("\n🔹 %s:\n", strings.ToUpper(topic))
		for _, rule := range schema.Rules(topic) {
			fmt.Printf("   • %s\n", rule)
		}
	}
}

func printMortalityGuide() {
	guide := schema.MortalityInfo()

	fmt.Println("💀 GUIA DE MORTALIDADE:")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Campo principal: %s\n", guide.PrimaryField)
	fmt.Printf("%s\n", guide.Description)
	fmt.Printf("Campo de causa: %s\n", guide.CauseField)

	fmt.Println("\n✅ Queries corretas:")
	for _, example := range guide.CorrectQueries {
		fmt.Printf("   %s:\n      %s\n", example.Name, example.SQL)
	}

	fmt.Println("\n⚠️  Anti-padrões:")
	for _, anti := range guide.AntiPatterns {
		fmt.Printf("   ❌ %s\n      %s\n", anti.SQL, anti.Explanation)
	}
	fmt.Println(strings.Repeat("=", 50))
}

func printSuggestions(question string) {
	suggestions := schema.ColumnSuggestions(question)
	if len(suggestions) == 0 {
		fmt.Println("Nenhuma sugestão de coluna para essa pergunta.")
		return
	}

	fmt.Println("💡 Colunas sugeridas:")
	for _, suggestion := range suggestions {
		fmt.Printf("   • %s\n", suggestion)
	}
}
