package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 5

// CredentialManager creates accounts and checks passwords. Nothing else
// touches password material.
type CredentialManager struct {
	store *AccountStore
	cost  int

	// dummyHash is compared against when the email is unknown so that both
	// failure paths cost one bcrypt evaluation.
	dummyHash []byte
}

// NewCredentialManager fails only if cost is outside bcrypt's range.
func NewCredentialManager(store *AccountStore, cost int) (*CredentialManager, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("timing-equalizer"), cost)
	if err != nil {
		return nil, err
	}
	return &CredentialManager{store: store, cost: cost, dummyHash: dummy}, nil
}

// CreateAccount validates and hashes password, then stores a new active
// account. Errors: common.ErrInvalidCredential, common.ErrInvalidIdentity,
// common.ErrDuplicateIdentity.
func (c *CredentialManager) CreateAccount(ctx context.Context, email, password, name string) (*models.Account, error) {
	account := &models.Account{Email: email, Name: name, IsActive: true}
	return c.create(ctx, account, password)
}

// CreateSuperuser is CreateAccount for an administrative account.
func (c *CredentialManager) CreateSuperuser(ctx context.Context, email, password string) (*models.Account, error) {
	account := &models.Account{Email: email, IsActive: true, IsStaff: true, IsSuperuser: true}
	return c.create(ctx, account, password)
}

func (c *CredentialManager) create(ctx context.Context, account *models.Account, password string) (*models.Account, error) {
	if err := c.SetPassword(account, password); err != nil {
		return nil, err
	}
	return c.store.Save(ctx, account)
}

// SetPassword validates newPassword and replaces account's hash in memory.
// The caller persists the account. Outstanding tokens stay valid.
func (c *CredentialManager) SetPassword(account *models.Account, newPassword string) error {
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidCredential, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), c.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %v", common.ErrInvalidCredential, err)
		}
		return fmt.Errorf("hash password: %w", err)
	}

	account.PasswordHash = string(hash)
	return nil
}

// Verify returns the account for email when password matches its hash.
// An unknown email, a wrong password and an inactive account all yield
// common.ErrAuthenticationFailed and the same amount of hashing work.
func (c *CredentialManager) Verify(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := c.store.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(password))
			return nil, common.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !c.matches(account, password) || !account.IsActive {
		return nil, common.ErrAuthenticationFailed
	}
	return account, nil
}

func (c *CredentialManager) matches(account *models.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}
