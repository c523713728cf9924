package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/susql/susql/internal/agent"
	"github.com/susql/susql/internal/schema"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [sql]",
	Short: "Validate a SQL query against the schema rules",
	Long: `Check a SQL query against the dados_sus3 schema pitfalls without
executing it. The check is advisory; the command always succeeds.

Examples:
  susql validate "SELECT COUNT(*) FROM dados_sus3 WHERE MORTE = 1"
  susql validate "SELECT COUNT(*) FROM dados_sus3 WHERE CID_MORTE > 0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		fmt.Printf("🔍 Validando query: %s\n", query)

		renderValidation(os.Stdout, schema.ValidateQuerySemantics(query))

		if !agent.IsSelectQuery(query) {
			fmt.Println("🚫 Segurança: apenas consultas SELECT são executadas")
		} else if !agent.IsSafeQuery(query) {
			fmt.Println("🚫 Segurança: query contém palavras-chave bloqueadas")
		} else {
			fmt.Println("🔒 Segurança: query permitida para execução")
		}

		fmt.Printf("📊 Complexidade estimada: %s\n", agent.EstimateComplexity(query))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
