// Package authtokens declares the server-side repository contract for bearer
// tokens and provides PostgreSQL and in-memory implementations.
package authtokens

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// Repository binds opaque token keys to accounts. An account has at most one
// token.
type Repository interface {
	// GetOrCreate stores candidateKey for accountID unless the account
	// already has a token, and returns whichever key is bound afterwards.
	// The check and the insert are a single atomic step.
	GetOrCreate(ctx context.Context, accountID string, candidateKey string) (string, error)

	// Find returns the token row for key, or common.ErrorNotFound.
	Find(ctx context.Context, key string) (*models.AuthToken, error)
}
