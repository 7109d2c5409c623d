package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents an idempotent schema change.
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists schema changes in the order they must run.
func Migrations() []Migration {
	return []Migration{
		{
			Name: "create_generated_resumes",
			SQL: `
				CREATE TABLE IF NOT EXISTS generated_resumes (
					id UUID PRIMARY KEY,
					session_id UUID,
					user_type TEXT NOT NULL,
					model TEXT NOT NULL,
					prompt TEXT NOT NULL,
					content TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now()
				);
			`,
		},
		{
			Name: "index_generated_resumes_session",
			SQL:  `CREATE INDEX IF NOT EXISTS generated_resumes_session_idx ON generated_resumes (session_id);`,
		},
		{
			Name: "create_draft_slots",
			SQL: `
				CREATE TABLE IF NOT EXISTS draft_slots (
					session_id UUID NOT NULL,
					slot TEXT NOT NULL,
					value JSONB NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					PRIMARY KEY (session_id, slot)
				);
			`,
		},
	}
}
