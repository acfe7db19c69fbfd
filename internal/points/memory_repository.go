package points

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	nodes map[string]Node
}

// NewMemoryRepository builds an in-memory node store for tests and development.
func NewMemoryRepository() Repository {
	return &memoryRepository{nodes: make(map[string]Node)}
}

func (r *memoryRepository) Set(_ context.Context, node Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node.Path] = node
	return nil
}

func (r *memoryRepository) Get(_ context.Context, path string) (Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.nodes[path]
	if !ok {
		return Node{}, ErrNotFound
	}
	return node, nil
}
