// Package migrations embeds the catalog store schema for each supported driver.
package migrations

import "embed"

// SqliteMigrations holds the SQLite schema files, applied in filename order.
//
//go:embed sqlite/*.sql
var SqliteMigrations embed.FS

// PostgresMigrations holds the PostgreSQL schema files, applied in filename order.
//
//go:embed postgres/*.sql
var PostgresMigrations embed.FS
