package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/avoronin/cityride/internal/kvstore/migrations"
)

// runMigrations applies the embedded goose migrations with the given dialect.
func runMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitSQLite opens (or creates) the local SQLite database at dsn, applies
// migrations, and returns a ready repository. The caller owns closing db.
//
// The "sqlite" driver must be registered by the importing binary:
//
//	import _ "modernc.org/sqlite"
func InitSQLite(ctx context.Context, dsn string) (*SQLiteRepository, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(ctx, db, "sqlite3"); err != nil {
		db.Close()
		return nil, nil, err
	}
	return NewSQLiteRepository(db), db, nil
}

// InitPostgres connects to Postgres via the pgx stdlib driver, applies
// migrations, and returns a ready repository. The caller owns closing db.
//
// The "pgx" driver must be registered by the importing binary:
//
//	import _ "github.com/jackc/pgx/v5/stdlib"
func InitPostgres(ctx context.Context, dsn string) (*PostgresRepository, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	if err := runMigrations(ctx, db, "pgx"); err != nil {
		db.Close()
		return nil, nil, err
	}
	return NewPostgresRepository(db), db, nil
}
