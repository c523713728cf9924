package agent

import (
	"fmt"
	"regexp"
	"strings"
)

// dangerousKeywords are matched as plain substrings of the uppercased query.
var dangerousKeywords = []string{
	"DROP", "DELETE", "UPDATE", "INSERT", "ALTER",
	"CREATE", "TRUNCATE", "REPLACE", "EXEC", "EXECUTE",
}

var (
	unsafeInputChars = regexp.MustCompile(`[;'"\\]`)
	fencedBlock      = regexp.MustCompile("(?is)```(?:sql)?\\s*(.+?)```")
	selectStmt       = regexp.MustCompile(`(?is)(SELECT.*?(?:;|\n|$))`)
)

// SanitizeInput strips characters usable for SQL injection and caps the text
// at maxLength runes.
func SanitizeInput(input string, maxLength int) string {
	if input == "" {
		return ""
	}

	sanitized := unsafeInputChars.ReplaceAllString(input, "")

	runes := []rune(sanitized)
	if maxLength > 0 && len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return sanitized
}

// IsSafeQuery reports whether the query avoids every mutating keyword.
func IsSafeQuery(query string) bool {
	up := strings.ToUpper(query)
	for _, keyword := range dangerousKeywords {
		if strings.Contains(up, keyword) {
			return false
		}
	}
	return true
}

// IsSelectQuery reports whether the query is a read.
func IsSelectQuery(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT")
}

// ExtractSQL pulls candidate queries out of a model response: fenced code
// blocks first, then bare SELECT statements. Duplicates are dropped while
// keeping order, so a fenced query stays ahead of its single-line echo.
func ExtractSQL(response string) []string {
	var queries []string

	for _, m := range fencedBlock.FindAllStringSubmatch(response, -1) {
		if q := strings.TrimSpace(m[1]); q != "" {
			queries = append(queries, q)
		}
	}

	for _, m := range selectStmt.FindAllStringSubmatch(response, -1) {
		if q := strings.TrimSpace(m[1]); q != "" {
			queries = append(queries, q)
		}
	}

	seen := make(map[string]bool, len(queries))
	var unique []string
	for _, q := range queries {
		if !seen[q] {
			seen[q] = true
			unique = append(unique, q)
		}
	}
	return unique
}

// EstimateComplexity buckets a query by how many heavyweight clauses it uses.
func EstimateComplexity(query string) string {
	up := strings.ToUpper(query)

	complexOperations := []string{
		"JOIN", "SUBQUERY", "UNION", "GROUP BY",
		"ORDER BY", "HAVING", "CASE WHEN",
	}

	score := 0
	for _, op := range complexOperations {
		if strings.Contains(up, op) {
			score++
		}
	}

	switch {
	case score == 0:
		return "simples"
	case score <= 2:
		return "média"
	default:
		return "complexa"
	}
}

const maxDisplayRows = 20

// FormatResults renders query output for the terminal. A single value becomes
// a one-line sentence, everything else a pipe-separated table capped at
// maxDisplayRows rows.
func FormatResults(columns []string, rows [][]string) string {
	if len(rows) == 0 {
		return "Nenhum resultado encontrado."
	}
	if len(rows) == 1 && len(rows[0]) == 1 {
		return "Resultado: " + rows[0][0]
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, " | "))
	b.WriteByte('\n')

	shown := rows
	if len(shown) > maxDisplayRows {
		shown = shown[:maxDisplayRows]
	}
	for _, row := range shown {
		b.WriteString(strings.Join(row, " | "))
		b.WriteByte('\n')
	}
	if len(rows) > maxDisplayRows {
		fmt.Fprintf(&b, "... e mais %d linhas\n", len(rows)-maxDisplayRows)
	}

	return strings.TrimRight(b.String(), "\n")
}
