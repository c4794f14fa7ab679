package db

import (
	"context"
	"crypto/sha256"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	embeddedmigrations "github.com/solatis/segmentvet/migrations"
)

// MigrationStatus represents the state of a single migration.
type MigrationStatus struct {
	ID          string
	Checksum    string
	Applied     bool
	AppliedAt   *time.Time
	ExecutionMs int64
}

// migration represents a parsed migration file
type migration struct {
	ID       string
	Checksum string
	SQL      string
}

// loadMigrations selects the embedded migration set for the connection's
// driver and parses it.
func loadMigrations(db *sqlx.DB) ([]migration, error) {
	var migrationsFS embed.FS
	var migrationsDir string

	switch db.DriverName() {
	case "sqlite3":
		migrationsFS = embeddedmigrations.SqliteMigrations
		migrationsDir = "sqlite"
	case "postgres":
		migrationsFS = embeddedmigrations.PostgresMigrations
		migrationsDir = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", db.DriverName())
	}

	migrations, err := parseMigrationFiles(migrationsFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to parse migrations: %w", err)
	}
	return migrations, nil
}

// MigrateUp runs all pending migrations against the database and returns the
// ids it applied. Checksums of already-applied migrations are validated first.
func MigrateUp(ctx context.Context, db *sqlx.DB) ([]string, error) {
	migrations, err := loadMigrations(db)
	if err != nil {
		return nil, err
	}

	if err := createMigrationsTable(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	// SHA256 hash detects modification of applied migrations
	if err := validateChecksums(ctx, db, migrations); err != nil {
		return nil, fmt.Errorf("migration checksum validation failed: %w", err)
	}

	applied, err := getAppliedMigrations(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}

	var ran []string
	for _, m := range migrations {
		if applied[m.ID] {
			continue
		}

		start := time.Now()

		// Migration and its record commit together
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return ran, fmt.Errorf("failed to begin transaction for migration %s: %w", m.ID, err)
		}

		if err := applyMigration(ctx, tx, m); err != nil {
			tx.Rollback()
			return ran, fmt.Errorf("failed to apply migration %s: %w", m.ID, err)
		}

		if err := recordMigration(ctx, tx, m.ID, m.Checksum, time.Since(start)); err != nil {
			tx.Rollback()
			return ran, fmt.Errorf("failed to record migration %s: %w", m.ID, err)
		}

		if err := tx.Commit(); err != nil {
			return ran, fmt.Errorf("failed to commit migration %s: %w", m.ID, err)
		}
		ran = append(ran, m.ID)
	}

	return ran, nil
}

// MigrateStatus returns the status of all migrations (applied and pending).
func MigrateStatus(ctx context.Context, db *sqlx.DB) ([]MigrationStatus, error) {
	migrations, err := loadMigrations(db)
	if err != nil {
		return nil, err
	}

	if err := createMigrationsTable(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	rows, err := db.QueryxContext(ctx, "SELECT migration_id, checksum, applied_at, execution_ms FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]MigrationStatus)
	for rows.Next() {
		var status MigrationStatus
		var appliedAt interface{}
		if err := rows.Scan(&status.ID, &status.Checksum, &appliedAt, &status.ExecutionMs); err != nil {
			return nil, err
		}
		if t, ok := parseAppliedAt(appliedAt); ok {
			status.AppliedAt = &t
		}
		status.Applied = true
		applied[status.ID] = status
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(migrations))
	for _, m := range migrations {
		if s, ok := applied[m.ID]; ok {
			statuses = append(statuses, s)
			continue
		}
		statuses = append(statuses, MigrationStatus{
			ID:       m.ID,
			Checksum: m.Checksum,
		})
	}

	return statuses, nil
}

// parseAppliedAt normalizes applied_at, which SQLite stores as RFC3339 text
// and PostgreSQL returns as a timestamp.
func parseAppliedAt(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		return parsed, err == nil
	case []byte:
		parsed, err := time.Parse(time.RFC3339, string(t))
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}

// parseMigrationFiles extracts ordered list of migrations from embed.FS
func parseMigrationFiles(fsys embed.FS, dir string) ([]migration, error) {
	var migrations []migration

	err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".sql") {
			return nil
		}

		content, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		hash := sha256.Sum256(content)
		migrations = append(migrations, migration{
			ID:       filepath.Base(path),
			Checksum: fmt.Sprintf("%x", hash),
			SQL:      string(content),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Sort by filename for deterministic ordering
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})

	return migrations, nil
}

// createMigrationsTable ensures migrations tracking table exists
// IMPORTANT: Schema must match migrations table definition in 001_initial_schema.sql
// If migration schema changes, update both locations
func createMigrationsTable(ctx context.Context, db *sqlx.DB) error {
	var createSQL string

	if db.DriverName() == "sqlite3" {
		createSQL = `
			CREATE TABLE IF NOT EXISTS migrations (
				migration_id TEXT PRIMARY KEY,
				checksum TEXT NOT NULL,
				applied_at TEXT NOT NULL,
				execution_ms INTEGER NOT NULL,
				CHECK (applied_at LIKE '____-__-__T__:__:__Z')
			)
		`
	} else {
		createSQL = `
			CREATE TABLE IF NOT EXISTS migrations (
				migration_id TEXT PRIMARY KEY,
				checksum TEXT NOT NULL,
				applied_at TIMESTAMP WITHOUT TIME ZONE NOT NULL,
				execution_ms INTEGER NOT NULL
			)
		`
	}

	_, err := db.ExecContext(ctx, createSQL)
	return err
}

// getAppliedMigrations returns a set of applied migration IDs
func getAppliedMigrations(ctx context.Context, db *sqlx.DB) (map[string]bool, error) {
	var ids []string
	if err := db.SelectContext(ctx, &ids, "SELECT migration_id FROM migrations"); err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(ids))
	for _, id := range ids {
		applied[id] = true
	}
	return applied, nil
}

// validateChecksums verifies all applied migrations match embedded checksums
func validateChecksums(ctx context.Context, db *sqlx.DB, migrations []migration) error {
	var recorded []struct {
		ID       string `db:"migration_id"`
		Checksum string `db:"checksum"`
	}
	if err := db.SelectContext(ctx, &recorded, "SELECT migration_id, checksum FROM migrations"); err != nil {
		return err
	}

	checksumMap := make(map[string]string, len(migrations))
	for _, m := range migrations {
		checksumMap[m.ID] = m.Checksum
	}

	for _, r := range recorded {
		expected, ok := checksumMap[r.ID]
		if !ok {
			return fmt.Errorf("migration %s exists in database but not in embedded files", r.ID)
		}
		if r.Checksum != expected {
			return fmt.Errorf("checksum mismatch for migration %s: expected %s, got %s", r.ID, expected, r.Checksum)
		}
	}

	return nil
}

// splitStatements drops comment lines and splits the remaining SQL on
// semicolons. lib/pq doesn't support multiple statements in single Exec.
func splitStatements(sql string) []string {
	var body strings.Builder
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	var statements []string
	for _, stmt := range strings.Split(body.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// applyMigration executes a single migration SQL within a transaction
func applyMigration(ctx context.Context, tx *sqlx.Tx, m migration) error {
	for _, stmt := range splitStatements(m.SQL) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement failed: %w", err)
		}
	}
	return nil
}

// recordMigration stores migration metadata within a transaction
func recordMigration(ctx context.Context, tx *sqlx.Tx, id, checksum string, duration time.Duration) error {
	now := time.Now().UTC()

	var appliedAt interface{} = now
	if tx.DriverName() == "sqlite3" {
		appliedAt = now.Format(time.RFC3339)
	}

	_, err := tx.ExecContext(ctx,
		tx.Rebind("INSERT INTO migrations (migration_id, checksum, applied_at, execution_ms) VALUES (?, ?, ?, ?)"),
		id, checksum, appliedAt, duration.Milliseconds(),
	)
	return err
}
