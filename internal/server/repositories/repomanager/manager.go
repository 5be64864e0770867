package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/authtokens"
)

// RepositoryManager vends repositories bound to a DBTX and owns schema
// migrations for its backend.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	AuthTokens(db dbx.DBTX) authtokens.Repository
}
