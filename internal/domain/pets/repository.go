package pets

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters de storage cuando la mascota
// no existe. Los services lo traducen a la taxonomía compartida.
var ErrNotFound = errors.New("pet not found")

type Repository interface {
	FindByID(ctx context.Context, id string) (*Pet, error)
	// Save es upsert: inserta o reemplaza por ID.
	Save(ctx context.Context, p *Pet) error
}
