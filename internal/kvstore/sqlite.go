package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronin/cityride/internal/dbx"
)

// SQLiteRepository persists key-value pairs in a local SQLite database.
// This is the on-device backend, the direct equivalent of the mobile app's
// async storage.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM appstate WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appstate[%s]: %w", key, err)
	}
	return []byte(value), nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appstate (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to set appstate[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appstate WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete appstate[%s]: %w", key, err)
	}
	return nil
}
