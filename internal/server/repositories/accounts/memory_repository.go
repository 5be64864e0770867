package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. The email index is
// checked and written under one lock, so concurrent creates of the same
// email resolve to exactly one winner.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.Account
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]models.Account),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[account.Email]; taken {
		return nil, common.ErrDuplicateIdentity
	}
	account.CreatedAt = time.Now().UTC()
	r.byID[account.ID] = *account
	r.byEmail[account.Email] = account.ID
	return account, nil
}

func (r *MemoryRepository) Update(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[account.ID]
	if !ok {
		return common.ErrorNotFound
	}
	if owner, taken := r.byEmail[account.Email]; taken && owner != account.ID {
		return common.ErrDuplicateIdentity
	}

	delete(r.byEmail, current.Email)
	updated := *account
	updated.CreatedAt = current.CreatedAt
	r.byID[account.ID] = updated
	r.byEmail[account.Email] = account.ID
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a := r.byID[id]
	return &a, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}
