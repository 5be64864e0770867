package authtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// MemoryRepository keeps tokens in process memory.
type MemoryRepository struct {
	mu        sync.RWMutex
	byKey     map[string]models.AuthToken
	byAccount map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byKey:     make(map[string]models.AuthToken),
		byAccount: make(map[string]string),
	}
}

func (r *MemoryRepository) GetOrCreate(ctx context.Context, accountID string, candidateKey string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key, ok := r.byAccount[accountID]; ok {
		return key, nil
	}
	r.byKey[candidateKey] = models.AuthToken{Key: candidateKey, AccountID: accountID, CreatedAt: time.Now().UTC()}
	r.byAccount[accountID] = candidateKey
	return candidateKey, nil
}

func (r *MemoryRepository) Find(ctx context.Context, key string) (*models.AuthToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byKey[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}
