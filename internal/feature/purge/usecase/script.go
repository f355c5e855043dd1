package usecase

import (
	"fmt"
	"strings"
	"time"
)

// RenderSQLScript produces the reviewable SQL artifact equivalent to a purge
// run: a backup statement followed by a commented-out delete. Some operators
// still prefer running the statements by hand against production; the
// rendered text keeps that path available without re-templating by hand.
func RenderSQLScript(sourceTable, backupTable string, symbols []string, generatedAt time.Time) string {
	list := quoteList(symbols)

	var b strings.Builder
	b.WriteString("-- Database Cleanup Script\n")
	fmt.Fprintf(&b, "-- Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("-- CAUTION: Review before executing\n\n")

	b.WriteString("-- Backup delisted securities data before removal\n")
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s AS\nSELECT * FROM %s WHERE symbol IN (%s);\n\n", backupTable, sourceTable, list)

	b.WriteString("-- Remove delisted securities from main table\n")
	fmt.Fprintf(&b, "-- DELETE FROM %s WHERE symbol IN (%s);\n\n", sourceTable, list)

	b.WriteString("-- Note: Uncomment the DELETE statement above after reviewing the backup\n\n")

	b.WriteString("-- Statistics after cleanup:\n")
	fmt.Fprintf(&b, "-- SELECT COUNT(*) as remaining_records FROM %s;\n", sourceTable)
	fmt.Fprintf(&b, "-- SELECT COUNT(DISTINCT symbol) as remaining_securities FROM %s;\n", sourceTable)

	return b.String()
}

// quoteList renders symbols as a comma-separated list of SQL string literals,
// doubling embedded single quotes.
func quoteList(symbols []string) string {
	quoted := make([]string, 0, len(symbols))
	for _, s := range symbols {
		quoted = append(quoted, "'"+strings.ReplaceAll(s, "'", "''")+"'")
	}
	return strings.Join(quoted, ", ")
}
