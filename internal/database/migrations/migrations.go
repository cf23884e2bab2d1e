// Package migrations embeds the SQL schema applied by cmd/migrate.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS

// Schema returns the schema file for the given driver ("postgres" or "sqlite").
func Schema(driver string) ([]byte, error) {
	return Files.ReadFile("crimes_schema." + driver + ".sql")
}
