package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// Config carries the provider settings resolved from the application config.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Debug       bool
}

// Client talks to a single configured LLM provider.
type Client struct {
	provider     string
	model        string
	apiKey       string
	baseURL      string
	temperature  float64
	topP         float64
	maxTokens    int
	geminiClient *genai.Client
	debug        bool
}

func looksLikeEnvVarName(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 8 {
		return false
	}
	// Must be all caps/underscores/digits and start with a letter.
	for i, r := range s {
		if i == 0 {
			if r < 'A' || r > 'Z' {
				return false
			}
			continue
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			continue
		}
		return false
	}
	return true
}

// resolveEnvVarKeyPointer lets config files store the NAME of an env var
// instead of the key itself.
func resolveEnvVarKeyPointer(apiKey string) string {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ""
	}
	if !looksLikeEnvVarName(apiKey) {
		return apiKey
	}
	if v := strings.TrimSpace(os.Getenv(apiKey)); v != "" {
		return v
	}
	return apiKey
}

// New builds a client for the given provider. Supported providers are
// "ollama" (default, no API key needed), "openai" and "gemini".
func New(cfg Config) (*Client, error) {
	client := &Client{
		provider:    strings.ToLower(strings.TrimSpace(cfg.Provider)),
		model:       strings.TrimSpace(cfg.Model),
		apiKey:      resolveEnvVarKeyPointer(cfg.APIKey),
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		maxTokens:   cfg.MaxTokens,
		debug:       cfg.Debug,
	}

	if client.model == "" {
		client.model = "llama3"
	}

	switch client.provider {
	case "", "ollama":
		client.provider = "ollama"
		if client.baseURL == "" {
			client.baseURL = "http://localhost:11434/v1"
		}
	case "openai":
		if client.baseURL == "" {
			client.baseURL = "https://api.openai.com/v1"
		}
		if client.apiKey == "" {
			client.apiKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		}
	case "gemini":
		if client.apiKey == "" {
			client.apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		}
		ctx := context.Background()
		geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: client.apiKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		client.geminiClient = geminiClient
	default:
		return nil, fmt.Errorf("unknown AI provider %q (expected ollama, openai or gemini)", cfg.Provider)
	}

	return client, nil
}

// Provider returns the resolved provider name.
func (c *Client) Provider() string {
	return c.provider
}

// Model returns the model the client will ask for.
func (c *Client) Model() string {
	return c.model
}

// Ask sends a raw prompt to the configured provider and returns the text response.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	if c.debug {
		fmt.Printf("🤖 Sending %d chars to %s (model %s)\n", len(prompt), c.provider, c.model)
	}

	switch c.provider {
	case "gemini":
		return c.askGemini(ctx, prompt)
	default:
		return c.askChatCompletions(ctx, prompt)
	}
}

// StripCodeFences removes markdown code fence lines from a model response.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		if strings.HasPrefix(t, "```") {
			continue
		}
		out = append(out, ln)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
