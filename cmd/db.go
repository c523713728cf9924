package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/susql/susql/internal/agent"
	"github.com/susql/susql/internal/schema"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect the configured database",
	Long:  `Inspect the database behind the agent: table counts and sample rows.`,
}

var dbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show tables with record and column counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		st, err := openStore(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer st.Close()

		summary, err := st.DatabaseSummary(ctx)
		if err != nil {
			return err
		}

		renderDatabaseSummary(os.Stdout, summary)
		return nil
	},
}

var dbSampleCmd = &cobra.Command{
	Use:   "sample [tabela]",
	Short: "Show sample rows from a table",
	Long: `Show the first rows of a table. Defaults to dados_sus3 and to the
configured database.sample_rows row count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		table := schema.TableName
		if len(args) > 0 {
			table = args[0]
		}

		limit := viper.GetInt("database.sample_rows")
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}

		st, err := openStore(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer st.Close()

		columns, rows, err := st.SampleRows(ctx, table, limit)
		if err != nil {
			return err
		}

		fmt.Printf("📊 Amostra de %s (%d linhas):\n\n", table, len(rows))
		fmt.Println(agent.FormatResults(columns, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbInfoCmd)
	dbCmd.AddCommand(dbSampleCmd)

	dbSampleCmd.Flags().Int("limit", 0, "number of rows to show (default from config)")
}
