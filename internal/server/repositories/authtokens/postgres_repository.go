package authtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate relies on the UNIQUE(user_id) constraint. The no-op DO UPDATE
// makes RETURNING yield the existing key on conflict, and it waits for a
// concurrent insert of the same user to commit first.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, accountID string, candidateKey string) (string, error) {
	query := `
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET key = auth_tokens.key
		RETURNING key
	`
	var key string
	if err := r.db.QueryRowContext(ctx, query, candidateKey, accountID).Scan(&key); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return key, nil
}

// Find returns the token row for the given key.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) Find(ctx context.Context, key string) (*models.AuthToken, error) {
	query := `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE key = $1
	`
	t := &models.AuthToken{}
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&t.Key, &t.AccountID, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
