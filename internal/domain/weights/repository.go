package weights

import "context"

type Repository interface {
	// FindByPetID devuelve los registros ordenados por fecha
	// descendente (el más reciente primero). Lista vacía si no hay.
	FindByPetID(ctx context.Context, petID string) ([]*Weight, error)
	// Save es upsert: inserta o reemplaza por ID.
	Save(ctx context.Context, w *Weight) error
}
