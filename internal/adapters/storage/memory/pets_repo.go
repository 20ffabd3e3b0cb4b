package memory

import (
	"context"
	"sync"

	"pet-weight-tracker/internal/domain/pets"
)

type petRecord struct {
	id   string
	name string
}

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]petRecord
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]petRecord),
	}
}

// Save guarda una copia plana: mutaciones posteriores de la entidad no
// tocan lo "persistido" hasta el próximo Save.
func (r *petRepo) Save(ctx context.Context, p *pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.ID()] = petRecord{id: p.ID(), name: p.Name()}
	return nil
}

func (r *petRepo) FindByID(ctx context.Context, id string) (*pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, pets.ErrNotFound
	}
	return pets.Reconstruct(rec.id, rec.name)
}
