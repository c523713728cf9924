package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the SUS hospital admission data",
	Long: `Ask natural language questions about the dados_sus3 table.

Examples:
  susql ask "Quantas colunas tem a tabela dados_sus3?"
  susql ask "Quantos registros existem?"
  susql ask "Qual a idade média dos pacientes?"
  susql ask "Quantas mortes houve em Porto Alegre?"
  susql ask --sql-only "Quantos pacientes ficaram na UTI?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		sqlOnly, _ := cmd.Flags().GetBool("sql-only")
		noValidate, _ := cmd.Flags().GetBool("no-validate")
		debug := viper.GetBool("debug")

		ctx := context.Background()

		ag, st, err := newAgent(ctx, false)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		if sqlOnly {
			query, validations, err := ag.GenerateSQL(ctx, question)
			if err != nil {
				return err
			}
			fmt.Println(query)
			if !noValidate {
				for _, validation := range validations {
					for _, issue := range validation.Issues {
						fmt.Fprintf(os.Stderr, "⚠️  %s\n", issue)
					}
				}
			}
			return nil
		}

		result, err := ag.Answer(ctx, question)
		if err != nil {
			return err
		}

		renderResult(os.Stdout, result, debug, !noValidate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().Bool("sql-only", false, "print the generated SQL without executing it")
	askCmd.Flags().Bool("no-validate", false, "hide schema validation advisories for the generated SQL")
}
