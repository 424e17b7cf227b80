package providers

import (
	"fmt"
	"sync"

	"github.com/esparza-dev/traductor/pkg/models"
)

// Registry 提供商注册表，按模型标识查找
type Registry struct {
	mu        sync.RWMutex
	providers map[models.ID]Provider
}

// NewRegistry 创建新的注册表
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[models.ID]Provider),
	}
}

// Register 注册提供商
func (r *Registry) Register(id models.ID, provider Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[id]; exists {
		return fmt.Errorf("provider for model %s already registered", id)
	}

	r.providers[id] = provider
	return nil
}

// Get 获取提供商
func (r *Registry) Get(id models.ID) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[id]
	if !exists {
		return nil, fmt.Errorf("no provider registered for model %s", id)
	}

	return provider, nil
}

// List 列出所有已注册的模型标识
func (r *Registry) List() []models.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]models.ID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}

	return ids
}
