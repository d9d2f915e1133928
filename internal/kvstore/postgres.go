package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronin/cityride/internal/dbx"
)

// PostgresRepository persists key-value pairs in Postgres, for hosted
// deployments that share one backing store across devices.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM appstate WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appstate[%s]: %w", key, err)
	}
	return []byte(value), nil
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appstate (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to set appstate[%s]: %w", key, err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appstate WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete appstate[%s]: %w", key, err)
	}
	return nil
}
