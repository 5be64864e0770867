package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
)

// SignUpRequest is a decoded signup payload. Empty strings count as absent.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is a decoded token request. Empty strings count as absent.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountService is the surface the transport layer calls. Identity is
// always passed in explicitly as a token; nothing is read from ambient state.
type AccountService struct {
	store       *AccountStore
	credentials *CredentialManager
	issuer      *TokenIssuer
	resolver    *TokenResolver
}

func NewAccountService(store *AccountStore, credentials *CredentialManager, issuer *TokenIssuer, resolver *TokenResolver) *AccountService {
	return &AccountService{store: store, credentials: credentials, issuer: issuer, resolver: resolver}
}

// New wires the full component graph over one repository manager.
func New(db dbx.DBTX, m repomanager.RepositoryManager, cfg *config.Config) (*AccountService, error) {
	store := NewAccountStore(db, m)
	credentials, err := NewCredentialManager(store, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	issuer := NewTokenIssuer(db, m, cfg.TokenBytes)
	resolver := NewTokenResolver(db, m, store)
	return NewAccountService(store, credentials, issuer, resolver), nil
}

// Credentials exposes the credential manager for operator tooling.
func (s *AccountService) Credentials() *CredentialManager {
	return s.credentials
}

// SignUp creates a regular account and returns its public view.
func (s *AccountService) SignUp(ctx context.Context, req SignUpRequest) (models.PublicAccount, error) {
	if strings.TrimSpace(req.Email) == "" {
		return models.PublicAccount{}, common.ErrInvalidIdentity
	}
	if req.Password == "" {
		return models.PublicAccount{}, common.ErrMissingField
	}

	account, err := s.credentials.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return models.PublicAccount{}, err
	}
	return account.Public(), nil
}

// Login exchanges email and password for the account's bearer token.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return "", common.ErrMissingField
	}

	account, err := s.credentials.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(ctx, account)
}

// GetProfile returns the public view of the token's owner.
func (s *AccountService) GetProfile(ctx context.Context, token string) (models.PublicAccount, error) {
	account, err := s.resolver.Resolve(ctx, token)
	if err != nil {
		return models.PublicAccount{}, err
	}
	return account.Public(), nil
}

// UpdateProfile applies the set fields of upd to the token's owner in one
// write. Each field is validated before anything is stored, so a failure
// leaves the account unchanged.
func (s *AccountService) UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (models.PublicAccount, error) {
	account, err := s.resolver.Resolve(ctx, token)
	if err != nil {
		return models.PublicAccount{}, err
	}
	if upd.IsEmpty() {
		return account.Public(), nil
	}

	updated := *account
	if upd.Email != nil {
		email, err := s.store.CanonicalEmail(*upd.Email)
		if err != nil {
			return models.PublicAccount{}, err
		}
		updated.Email = email
	}
	if upd.Name != nil {
		updated.Name = *upd.Name
	}
	if upd.Password != nil {
		if err := s.credentials.SetPassword(&updated, *upd.Password); err != nil {
			return models.PublicAccount{}, err
		}
	}

	saved, err := s.store.Save(ctx, &updated)
	if err != nil {
		return models.PublicAccount{}, err
	}
	return saved.Public(), nil
}
