// Package services contains the server-side account subsystem:
//
//   - AccountStore: normalized, uniqueness-checked account persistence
//   - CredentialManager: the only code that hashes or checks passwords
//   - TokenIssuer / TokenResolver: bearer token issuance and lookup
//   - AccountService: signup, login and self-profile orchestration
package services

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
)

// NormalizeEmail trims surrounding whitespace and lower-cases the domain
// part (everything after the last "@"). The local part keeps its case.
// It is idempotent.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// AccountStore persists accounts through the repository manager, enforcing
// email normalization and validity on every write. Uniqueness is left to the
// repository, which checks it atomically with the insert.
type AccountStore struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewAccountStore(db dbx.DBTX, m repomanager.RepositoryManager) *AccountStore {
	return &AccountStore{db: db, repomanager: m}
}

// CanonicalEmail normalizes email and checks it is present and well formed.
func (s *AccountStore) CanonicalEmail(email string) (string, error) {
	email = NormalizeEmail(email)
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidIdentity, err)
	}
	return email, nil
}

// Save inserts account when it has no ID yet, and updates it otherwise.
// A new account gets a fresh UUID. The stored email is always normalized.
func (s *AccountStore) Save(ctx context.Context, account *models.Account) (*models.Account, error) {
	email, err := s.CanonicalEmail(account.Email)
	if err != nil {
		return nil, err
	}
	if account.PasswordHash == "" {
		return nil, fmt.Errorf("%w: account has no password set", common.ErrInvalidCredential)
	}

	a := *account
	a.Email = email
	repo := s.repomanager.Accounts(s.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
		created, err := repo.Create(ctx, &a)
		if err != nil {
			return nil, err
		}
		return created, nil
	}

	if err := repo.Update(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByEmail is an exact match on the stored email. It returns
// common.ErrorNotFound when nothing matches.
func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
}

// FindByID returns common.ErrorNotFound when nothing matches.
func (s *AccountStore) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return s.repomanager.Accounts(s.db).GetByID(ctx, id)
}

// Exists reports whether an account with exactly this email is stored.
func (s *AccountStore) Exists(ctx context.Context, email string) (bool, error) {
	return s.repomanager.Accounts(s.db).ExistsByEmail(ctx, email)
}
