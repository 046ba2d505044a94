package nl2sql

import "strings"

// CleanSQL strips markdown code fences from model output, leaving bare SQL.
// Text without fences passes through trimmed, so the function is idempotent.
func CleanSQL(text string) string {
	sqlText := strings.TrimSpace(text)
	if strings.HasPrefix(sqlText, "```sql") {
		sqlText = strings.ReplaceAll(sqlText, "```sql", "")
		sqlText = strings.ReplaceAll(sqlText, "```", "")
		return strings.TrimSpace(sqlText)
	}
	if strings.HasPrefix(sqlText, "```") {
		return strings.TrimSpace(strings.ReplaceAll(sqlText, "```", ""))
	}
	return sqlText
}
