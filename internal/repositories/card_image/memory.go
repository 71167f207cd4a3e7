package card_image

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	scopes map[string]map[string]string
}

// NewMemory creates an in-process card image repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		scopes: make(map[string]map[string]string),
	}
}

func (r *memoryRepository) GetImageURLs(_ context.Context, input *GetImageURLsInput) (map[string]string, error) {
	if input == nil || input.Scope == "" {
		return nil, errors.New("input and scope cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(input.Names))
	scope := r.scopes[input.Scope]
	for _, name := range input.Names {
		if url, ok := scope[name]; ok {
			out[name] = url
		}
	}
	return out, nil
}

func (r *memoryRepository) SaveImageURL(_ context.Context, input *SaveImageURLInput) error {
	if input == nil || input.Scope == "" || input.Name == "" {
		return errors.New("input, scope and name cannot be empty")
	}
	if input.URL == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	scope, ok := r.scopes[input.Scope]
	if !ok {
		scope = make(map[string]string)
		r.scopes[input.Scope] = scope
	}
	scope[input.Name] = input.URL
	return nil
}

func (r *memoryRepository) ClearScope(_ context.Context, input *ClearScopeInput) error {
	if input == nil || input.Scope == "" {
		return errors.New("input and scope cannot be empty")
	}

	r.mu.Lock()
	delete(r.scopes, input.Scope)
	r.mu.Unlock()
	return nil
}
