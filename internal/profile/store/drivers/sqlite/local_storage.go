package sqlite

import (
	"context"
	"database/sql"
)

const (
	getItem = `SELECT value FROM local_storage WHERE key = ?`

	setItem = `INSERT INTO local_storage (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	removeItem = `DELETE FROM local_storage WHERE key = ?`
)

type localStorageRepo struct {
	db *sql.DB
}

func (r *localStorageRepo) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.QueryRowContext(ctx, getItem, key).Scan(&value); err != nil {
		return "", mapNotFound(err)
	}
	return value, nil
}

func (r *localStorageRepo) SetItem(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, setItem, key, value)
	return err
}

func (r *localStorageRepo) RemoveItem(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, removeItem, key)
	return err
}
