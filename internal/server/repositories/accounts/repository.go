// Package accounts declares the server-side repository contract for account
// records and provides PostgreSQL and in-memory implementations.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// Repository stores accounts keyed by their (already normalized) email.
//
// Email uniqueness is enforced by the implementation itself, atomically with
// the write: Create and Update return common.ErrDuplicateIdentity when the
// email belongs to another account.
type Repository interface {
	// Create inserts a new account. The caller assigns ID.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// Update overwrites email, name, password hash and flags of an existing
	// account. Returns common.ErrorNotFound when the ID is unknown.
	Update(ctx context.Context, account *models.Account) error

	// GetByEmail does an exact-match lookup and returns common.ErrorNotFound
	// when absent.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// ExistsByEmail reports presence without loading the record.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
