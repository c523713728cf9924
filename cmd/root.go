package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/susql/susql/internal/agent"
	"github.com/susql/susql/internal/ai"
	"github.com/susql/susql/internal/store"
)

const rootVersion = "1.0.0"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "susql",
	Version: rootVersion,
	Short:   "AI-powered terminal for SUS hospital data queries",
	Long: `SUSQL is an AI-powered CLI tool that answers natural language questions
about the SIH/SUS hospital admission database (table dados_sus3).
Questions are answered in Brazilian Portuguese, either through direct
SQL fallbacks for well-known patterns or through an LLM that generates
schema-aware SQL.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.susql.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (shows executed SQL + internal diagnostics)")
	rootCmd.PersistentFlags().String("provider", "", "AI provider: ollama, openai or gemini (default ollama)")
	rootCmd.PersistentFlags().String("model", "", "model name (default llama3)")
	rootCmd.PersistentFlags().String("database", "", "database URI (default sqlite:///sus_data.db)")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("ai.provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("ai.model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("database.uri", rootCmd.PersistentFlags().Lookup("database"))

	viper.SetDefault("ai.provider", "ollama")
	viper.SetDefault("ai.model", "llama3")
	viper.SetDefault("ai.api_key", "")
	viper.SetDefault("ai.base_url", "")
	viper.SetDefault("ai.temperature", 0.1)
	viper.SetDefault("ai.top_p", 0.9)
	viper.SetDefault("ai.num_predict", 2048)
	viper.SetDefault("database.uri", "sqlite:///sus_data.db")
	viper.SetDefault("database.sample_rows", 3)
	viper.SetDefault("agent.max_iterations", 10)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".susql")
	}

	viper.SetEnvPrefix("susql")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// aiConfigFromViper assembles the AI client configuration from the
// effective viper settings.
func aiConfigFromViper() ai.Config {
	return ai.Config{
		Provider:    viper.GetString("ai.provider"),
		Model:       viper.GetString("ai.model"),
		APIKey:      viper.GetString("ai.api_key"),
		BaseURL:     viper.GetString("ai.base_url"),
		Temperature: viper.GetFloat64("ai.temperature"),
		TopP:        viper.GetFloat64("ai.top_p"),
		MaxTokens:   viper.GetInt("ai.num_predict"),
		Debug:       viper.GetBool("debug"),
	}
}

func openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, viper.GetString("database.uri"), viper.GetBool("debug"))
}

// newAgent wires the AI client and the database into a ready agent.
// The store may be nil when requireDB is false and the database cannot
// be opened, in which case the agent runs in SQL-only mode.
func newAgent(ctx context.Context, requireDB bool) (*agent.Agent, *store.Store, error) {
	client, err := ai.New(aiConfigFromViper())
	if err != nil {
		return nil, nil, err
	}

	st, err := openStore(ctx)
	if err != nil {
		if requireDB {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if viper.GetBool("debug") {
			fmt.Printf("⚠️  [DEBUG] Banco indisponível, seguindo sem execução: %v\n", err)
		}
		return agent.New(client, nil, viper.GetBool("debug")), nil, nil
	}

	return agent.New(client, st, viper.GetBool("debug")), st, nil
}
