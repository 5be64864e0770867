package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/authtokens"
)

// InMemoryRepositoryManager hands out one shared set of in-memory
// repositories regardless of the DBTX argument.
type InMemoryRepositoryManager struct {
	accounts   *accounts.MemoryRepository
	authTokens *authtokens.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts:   accounts.NewMemoryRepository(),
		authTokens: authtokens.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) AuthTokens(dbx.DBTX) authtokens.Repository {
	return m.authTokens
}
