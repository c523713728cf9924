// Package agent runs the question pipeline: sanitize the input, enrich CID
// disease mentions, triage for a canned fast path, and otherwise ask the
// model, extract and gate the generated SQL, execute it and sanity-check the
// answer against the question.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/susql/susql/internal/ai"
	"github.com/susql/susql/internal/cid"
	"github.com/susql/susql/internal/schema"
	"github.com/susql/susql/internal/triage"
)

const maxQuestionLength = 500

// LLM generates text from a prompt.
type LLM interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Database runs read queries against the SUS data.
type Database interface {
	QueryCount(ctx context.Context, query string) (int64, error)
	QueryRows(ctx context.Context, query string) ([]string, [][]string, error)
	ColumnCountSQL(table string) string
}

// Result is the outcome of one question.
type Result struct {
	Success         bool
	Response        string
	Method          string
	ExecutedQueries []string
	Validations     []schema.Validation
	// FallbackReason is set when a canned plan answered, either because the
	// triage matched or because the model answer had to be corrected.
	FallbackReason string
	// SchemaCorrection notes a schema fix the plan applied (MORTE vs CID_MORTE).
	SchemaCorrection string
	// EnrichedQuestion is the CID-rewritten question, when a disease matched.
	EnrichedQuestion string
	// AgentError and WrongResponse describe a model answer that failed the
	// sanity check and was replaced by a canned plan.
	AgentError    string
	WrongResponse string
}

// Agent wires the model and the database together.
type Agent struct {
	llm   LLM
	db    Database
	debug bool
}

func New(llm LLM, db Database, debug bool) *Agent {
	return &Agent{llm: llm, db: db, debug: debug}
}

// Answer processes one natural language question end to end.
func (a *Agent) Answer(ctx context.Context, question string) (*Result, error) {
	question = SanitizeInput(question, maxQuestionLength)
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is empty")
	}

	target := question
	if enriched, ok := cid.Enrich(question); ok {
		target = enriched
		if a.debug {
			fmt.Printf("🩺 [DEBUG] Pergunta enriquecida: %s\n", target)
		}
	}

	var result Result
	var err error

	decision := triage.Classify(target)
	if decision.UseFallback {
		if a.debug {
			fmt.Printf("🔧 [DEBUG] Usando fallback direto\n")
		}
		result, err = a.runPlan(ctx, decision.Intent, decision.Reason)
		if err != nil {
			if a.debug {
				fmt.Printf("⚠️  [DEBUG] Fallback falhou, tentando o modelo: %v\n", err)
			}
			result, err = a.askModel(ctx, question, target)
		}
	} else {
		result, err = a.askModel(ctx, question, target)
	}

	if err != nil {
		return nil, err
	}
	if target != question {
		result.EnrichedQuestion = target
	}
	return &result, nil
}

// runPlan executes the canned query for an intent and renders its response.
func (a *Agent) runPlan(ctx context.Context, intent, reason string) (Result, error) {
	plan, ok := triage.PlanFor(intent)
	if !ok {
		return Result{}, fmt.Errorf("no canned plan for intent %q", intent)
	}
	if a.db == nil {
		return Result{}, fmt.Errorf("no database connected")
	}

	query := plan.SQL
	if intent == triage.IntentColumnCount {
		query = a.db.ColumnCountSQL(schema.TableName)
	}

	count, err := a.db.QueryCount(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("failed to run canned query: %w", err)
	}

	return Result{
		Success:          true,
		Response:         plan.Render(count),
		Method:           plan.Method,
		ExecutedQueries:  []string{query},
		FallbackReason:   reason,
		SchemaCorrection: plan.Note,
	}, nil
}

// askModel sends the schema-grounded prompt to the model, extracts the SQL,
// executes the first safe SELECT and checks the answer for plausibility.
// question is the user's original text, target the CID-enriched variant.
func (a *Agent) askModel(ctx context.Context, question, target string) (Result, error) {
	raw, err := a.llm.Ask(ctx, schema.BuildQueryPrompt(target))
	if err != nil {
		return Result{}, fmt.Errorf("failed to ask the model: %w", err)
	}

	queries := ExtractSQL(raw)

	var validations []schema.Validation
	for _, q := range queries {
		validations = append(validations, schema.ValidateQuerySemantics(q))
	}

	query := firstRunnable(queries)
	if query == "" {
		if len(queries) > 0 {
			return Result{
				Success:         false,
				Response:        "A consulta gerada não passou na verificação de segurança.",
				Method:          "failed",
				ExecutedQueries: queries,
				Validations:     validations,
			}, nil
		}

		// The model answered in prose without SQL.
		answer := ai.StripCodeFences(raw)
		if strings.TrimSpace(answer) == "" {
			return Result{
				Success:  false,
				Response: "Não foi possível processar a consulta.",
				Method:   "failed",
			}, nil
		}
		return Result{
			Success:  true,
			Response: answer,
			Method:   "agent",
		}, nil
	}

	if a.db == nil {
		return Result{
			Success:         true,
			Response:        query,
			Method:          "agent_sql_only",
			ExecutedQueries: queries,
			Validations:     validations,
		}, nil
	}

	columns, rows, err := a.db.QueryRows(ctx, query)
	if err != nil {
		return Result{
			Success:         false,
			Response:        fmt.Sprintf("Erro ao processar consulta: %v", err),
			Method:          "error",
			ExecutedQueries: queries,
			Validations:     validations,
		}, nil
	}

	response := FormatResults(columns, rows)

	check := CheckPlausibility(question, response, []string{query})
	if !check.IsValid {
		if a.debug {
			fmt.Printf("🔧 [DEBUG] Resposta do agente suspeita: %s\n", check.Issue)
			fmt.Printf("🔧 [DEBUG] Aplicando correção via fallback\n")
		}
		corrected, planErr := a.runPlan(ctx, check.Correction, correctionReason(check.Correction))
		if planErr == nil {
			corrected.AgentError = check.Issue
			corrected.WrongResponse = response
			return corrected, nil
		}
	}

	return Result{
		Success:         true,
		Response:        response,
		Method:          "agent",
		ExecutedQueries: queries,
		Validations:     validations,
	}, nil
}

// GenerateSQL runs the pipeline only up to SQL generation, without touching
// the database. The returned validation is advisory.
func (a *Agent) GenerateSQL(ctx context.Context, question string) (string, []schema.Validation, error) {
	question = SanitizeInput(question, maxQuestionLength)
	if strings.TrimSpace(question) == "" {
		return "", nil, fmt.Errorf("question is empty")
	}

	target := question
	if enriched, ok := cid.Enrich(question); ok {
		target = enriched
	}

	decision := triage.Classify(target)
	if decision.UseFallback {
		if plan, ok := triage.PlanFor(decision.Intent); ok {
			query := plan.SQL
			if decision.Intent == triage.IntentColumnCount && a.db != nil {
				query = a.db.ColumnCountSQL(schema.TableName)
			}
			return query, []schema.Validation{schema.ValidateQuerySemantics(query)}, nil
		}
	}

	raw, err := a.llm.Ask(ctx, schema.BuildQueryPrompt(target))
	if err != nil {
		return "", nil, fmt.Errorf("failed to ask the model: %w", err)
	}

	query := firstRunnable(ExtractSQL(raw))
	if query == "" {
		return "", nil, fmt.Errorf("no runnable SELECT in the model response")
	}

	return query, []schema.Validation{schema.ValidateQuerySemantics(query)}, nil
}

// firstRunnable picks the first extracted query that is a safe read.
func firstRunnable(queries []string) string {
	for _, q := range queries {
		if IsSelectQuery(q) && IsSafeQuery(q) {
			return q
		}
	}
	return ""
}

func correctionReason(intent string) string {
	switch intent {
	case triage.IntentColumnCount:
		return "Correção automática: pergunta sobre colunas"
	case triage.IntentRecordCount:
		return "Correção automática: pergunta sobre registros"
	default:
		return "Correção automática"
	}
}
