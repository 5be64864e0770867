package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/authtokens"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func testConfig() *config.Config {
	return &config.Config{BcryptCost: bcrypt.MinCost, TokenBytes: 20}
}

type fixture struct {
	manager  *repomanager.InMemoryRepositoryManager
	store    *AccountStore
	creds    *CredentialManager
	issuer   *TokenIssuer
	resolver *TokenResolver
	service  *AccountService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m := repomanager.NewInMemoryRepositoryManager()
	store := NewAccountStore(nil, m)
	creds, err := NewCredentialManager(store, bcrypt.MinCost)
	require.NoError(t, err)
	issuer := NewTokenIssuer(nil, m, 20)
	resolver := NewTokenResolver(nil, m, store)
	return &fixture{
		manager:  m,
		store:    store,
		creds:    creds,
		issuer:   issuer,
		resolver: resolver,
		service:  NewAccountService(store, creds, issuer, resolver),
	}
}

// signUpAndLogin creates an account and returns its token.
func (f *fixture) signUpAndLogin(t *testing.T, email, password, name string) string {
	t.Helper()
	ctx := context.Background()
	_, err := f.service.SignUp(ctx, SignUpRequest{Email: email, Password: password, Name: name})
	require.NoError(t, err)
	token, err := f.service.Login(ctx, LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	return token
}

// deactivate flips is_active off directly in the repository.
func (f *fixture) deactivate(t *testing.T, email string) {
	t.Helper()
	ctx := context.Background()
	a, err := f.store.FindByEmail(ctx, email)
	require.NoError(t, err)
	a.IsActive = false
	require.NoError(t, f.manager.Accounts(nil).Update(ctx, a))
}

func strPtr(s string) *string { return &s }

// fakeAccountsRepo fails every call with err.
type fakeAccountsRepo struct{ err error }

func (f *fakeAccountsRepo) Create(context.Context, *models.Account) (*models.Account, error) {
	return nil, f.err
}
func (f *fakeAccountsRepo) Update(context.Context, *models.Account) error { return f.err }
func (f *fakeAccountsRepo) GetByEmail(context.Context, string) (*models.Account, error) {
	return nil, f.err
}
func (f *fakeAccountsRepo) GetByID(context.Context, string) (*models.Account, error) {
	return nil, f.err
}
func (f *fakeAccountsRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, f.err }

// fakeTokensRepo fails every call with err.
type fakeTokensRepo struct{ err error }

func (f *fakeTokensRepo) GetOrCreate(context.Context, string, string) (string, error) {
	return "", f.err
}
func (f *fakeTokensRepo) Find(context.Context, string) (*models.AuthToken, error) {
	return nil, f.err
}

type fakeRepoManager struct {
	a accounts.Repository
	r authtokens.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository       { return m.a }
func (m *fakeRepoManager) AuthTokens(dbx.DBTX) authtokens.Repository   { return m.r }
