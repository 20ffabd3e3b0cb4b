package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-weight-tracker/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Save(ctx context.Context, p *pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`,
		p.ID(),
		p.Name(),
	)
	return err
}

func (r *PetsRepo) FindByID(ctx context.Context, id string) (*pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM pets
		WHERE id = $1
	`, id)

	var petID, name string
	if err := row.Scan(&petID, &name); err != nil {
		if err == sql.ErrNoRows {
			return nil, pets.ErrNotFound
		}
		return nil, err
	}

	return pets.Reconstruct(petID, name)
}
