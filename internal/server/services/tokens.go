package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
)

// TokenIssuer hands out the bearer token of a verified account, minting one
// on first use.
type TokenIssuer struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	size        int
}

// NewTokenIssuer mints tokens of size random bytes (2*size hex characters).
func NewTokenIssuer(db dbx.DBTX, m repomanager.RepositoryManager, size int) *TokenIssuer {
	return &TokenIssuer{db: db, repomanager: m, size: size}
}

// Issue returns the account's existing token, or binds a new random one.
// Repeated and concurrent calls for one account return the same value.
func (i *TokenIssuer) Issue(ctx context.Context, account *models.Account) (string, error) {
	candidate, err := common.MakeRandHexString(i.size)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	key, err := i.repomanager.AuthTokens(i.db).GetOrCreate(ctx, account.ID, candidate)
	if err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return key, nil
}

// TokenResolver maps a presented token to its account. It has no side effects.
type TokenResolver struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	store       *AccountStore
}

func NewTokenResolver(db dbx.DBTX, m repomanager.RepositoryManager, store *AccountStore) *TokenResolver {
	return &TokenResolver{db: db, repomanager: m, store: store}
}

// Resolve fails with common.ErrUnauthenticated for an empty or unknown token
// and with common.ErrAccountInactive when the owner is disabled.
func (r *TokenResolver) Resolve(ctx context.Context, tokenValue string) (*models.Account, error) {
	if tokenValue == "" {
		return nil, common.ErrUnauthenticated
	}

	token, err := r.repomanager.AuthTokens(r.db).Find(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("lookup token: %w", err)
	}

	account, err := r.store.FindByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("lookup token owner: %w", err)
	}

	if !account.IsActive {
		return nil, common.ErrAccountInactive
	}
	return account, nil
}
