package cmd

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/susql/susql/internal/schema"
	"github.com/susql/susql/internal/triage"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run a Model Context Protocol server over stdio",
	Long: `Expose the dados_sus3 knowledge base as MCP tools so AI assistants
can look up column documentation, validate SQL queries and classify
questions without direct database access.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer() error {
	s := server.NewMCPServer("susql", rootVersion, server.WithToolCapabilities(false))

	s.AddTool(
		mcp.NewTool("get_column_info",
			mcp.WithDescription("Documentation for one dados_sus3 column: type, description, valid values and example query"),
			mcp.WithString("column", mcp.Required(), mcp.Description("Column name, case insensitive (e.g. MORTE, IDADE)")),
		),
		handleColumnInfo,
	)

	s.AddTool(
		mcp.NewTool("get_contextual_prompt",
			mcp.WithDescription("Full schema briefing for the dados_sus3 table, ready to inject into an LLM prompt"),
		),
		handleContextualPrompt,
	)

	s.AddTool(
		mcp.NewTool("validate_query",
			mcp.WithDescription("Advisory validation of a SQL query against known dados_sus3 pitfalls; never rejects, only reports issues and suggestions"),
			mcp.WithString("query", mcp.Required(), mcp.Description("SQL query to check")),
		),
		handleValidateQuery,
	)

	s.AddTool(
		mcp.NewTool("suggest_columns",
			mcp.WithDescription("Column suggestions for a natural language question about the dados_sus3 data"),
			mcp.WithString("question", mcp.Required(), mcp.Description("Question in Portuguese")),
		),
		handleSuggestColumns,
	)

	s.AddTool(
		mcp.NewTool("classify_question",
			mcp.WithDescription("Classify a question into a fallback intent (column_count, record_count, death_count, state_count, city_count) or general"),
			mcp.WithString("question", mcp.Required(), mcp.Description("Question in Portuguese")),
		),
		handleClassifyQuestion,
	)

	return server.ServeStdio(s)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}

func handleColumnInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	column, err := request.RequireString("column")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(schema.ColumnInfo(column))
}

func handleContextualPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(schema.ContextualPrompt()), nil
}

func handleValidateQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(schema.ValidateQuerySemantics(query))
}

func handleSuggestColumns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string][]string{"suggestions": schema.ColumnSuggestions(question)})
}

func handleClassifyQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(triage.Classify(question))
}
