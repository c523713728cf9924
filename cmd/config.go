package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage susql configuration",
	Long:  `Configure susql settings including the AI provider and database URI.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file in your home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".susql.yaml")

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file already exists at %s\n", configPath)
			return nil
		}

		defaultConfig := `# SUSQL Configuration
# Copy this to ~/.susql.yaml and customize for your setup

debug: false

# AI Provider Configuration
ai:
  provider: ollama          # ollama, openai or gemini
  model: llama3             # llama3 for ollama, gpt-4o for openai, gemini-2.5-flash for gemini
  # api_key: OPENAI_API_KEY # literal key or the name of the env var that holds it
  # base_url: http://localhost:11434/v1
  temperature: 0.1
  top_p: 0.9
  num_predict: 2048

# Database Configuration
database:
  uri: sqlite:///sus_data.db  # also postgres://... or mysql://...
  sample_rows: 3

# Agent Configuration
agent:
  max_iterations: 10
`

		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("error writing config file: %w", err)
		}

		fmt.Printf("Configuration file created at %s\n", configPath)
		fmt.Println("Edit it to match your AI provider and database setup.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  `Display the effective configuration after file, environment and flag overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := effectiveSettings()

		out, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("error rendering configuration: %w", err)
		}

		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Printf("Configuration file: %s\n\n", used)
		} else {
			fmt.Println("No configuration file found. Run 'susql config init' to create one.")
			fmt.Println()
		}
		fmt.Print(string(out))

		if issues := validateSettings(settings); len(issues) > 0 {
			fmt.Println("\n⚠️  Problemas encontrados:")
			for _, issue := range issues {
				fmt.Printf("   ❌ %s\n", issue)
			}
		}
		return nil
	},
}

// settings mirrors the config file layout so the effective values render
// in a stable order.
type settings struct {
	Debug bool `yaml:"debug"`
	AI    struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		APIKey      string  `yaml:"api_key,omitempty"`
		BaseURL     string  `yaml:"base_url,omitempty"`
		Temperature float64 `yaml:"temperature"`
		TopP        float64 `yaml:"top_p"`
		NumPredict  int     `yaml:"num_predict"`
	} `yaml:"ai"`
	Database struct {
		URI        string `yaml:"uri"`
		SampleRows int    `yaml:"sample_rows"`
	} `yaml:"database"`
	Agent struct {
		MaxIterations int `yaml:"max_iterations"`
	} `yaml:"agent"`
}

func effectiveSettings() settings {
	var s settings
	s.Debug = viper.GetBool("debug")
	s.AI.Provider = viper.GetString("ai.provider")
	s.AI.Model = viper.GetString("ai.model")
	s.AI.APIKey = maskKey(viper.GetString("ai.api_key"))
	s.AI.BaseURL = viper.GetString("ai.base_url")
	s.AI.Temperature = viper.GetFloat64("ai.temperature")
	s.AI.TopP = viper.GetFloat64("ai.top_p")
	s.AI.NumPredict = viper.GetInt("ai.num_predict")
	s.Database.URI = viper.GetString("database.uri")
	s.Database.SampleRows = viper.GetInt("database.sample_rows")
	s.Agent.MaxIterations = viper.GetInt("agent.max_iterations")
	return s
}

// maskKey hides literal API keys. Env var names pass through untouched
// since they are not secrets.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	upper := true
	for _, r := range key {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') && r != '_' {
			upper = false
			break
		}
	}
	if upper {
		return key
	}
	return "********"
}

// validateSettings reports configuration problems without aborting.
func validateSettings(s settings) []string {
	var issues []string

	if s.AI.Model == "" {
		issues = append(issues, "Nome do modelo não configurado")
	}
	if s.AI.Temperature < 0 || s.AI.Temperature > 1 {
		issues = append(issues, "Temperature deve estar entre 0 e 1")
	}
	if s.Database.URI == "" {
		issues = append(issues, "URI do banco de dados não configurada")
	}
	if s.Agent.MaxIterations <= 0 {
		issues = append(issues, "Max iterations deve ser maior que 0")
	}

	return issues
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
