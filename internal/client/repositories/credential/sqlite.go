package credential

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postpilot/postpilot/internal/dbx"
)

// tokenKey is the single well-known key the bearer credential lives under.
const tokenKey = "token"

// SQLiteRepository stores the credential in the local client database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM credential WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	return value, nil
}

// Set replaces the stored credential. Delete and insert run in one
// transaction so the slot never holds more than one live value.
func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credential WHERE key = ?`, tokenKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO credential (key, value) VALUES (?, ?)`, tokenKey, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credential WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
