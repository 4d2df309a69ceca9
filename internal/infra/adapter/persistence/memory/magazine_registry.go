package memory

import (
	"sync"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// MagazineRegistry keeps magazines in creation order.
type MagazineRegistry struct {
	mu        sync.RWMutex
	magazines []*entity.Magazine
}

// NewMagazineRegistry creates an empty in-memory magazine registry.
func NewMagazineRegistry() *MagazineRegistry {
	return &MagazineRegistry{}
}

var _ repository.MagazineRegistry = (*MagazineRegistry)(nil)

func (r *MagazineRegistry) Register(magazine *entity.Magazine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.magazines = append(r.magazines, magazine)
}

// All returns a copy of the registered magazines in creation order.
func (r *MagazineRegistry) All() []*entity.Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Magazine, len(r.magazines))
	copy(out, r.magazines)
	return out
}

func (r *MagazineRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.magazines)
}

func (r *MagazineRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.magazines = nil
}
