package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-weight-tracker/internal/domain/weights"
)

type WeightsRepo struct {
	db *sql.DB
}

func NewWeightsRepo(db *sql.DB) *WeightsRepo {
	return &WeightsRepo{db: db}
}

func (r *WeightsRepo) Save(ctx context.Context, w *weights.Weight) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO weights (id, pet_id, weight_kg, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			date = EXCLUDED.date
	`,
		w.ID(),
		w.PetID(),
		w.Kilograms(),
		w.Date(),
	)
	return err
}

func (r *WeightsRepo) FindByPetID(ctx context.Context, petID string) ([]*weights.Weight, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, weight_kg, date
		FROM weights
		WHERE pet_id = $1
		ORDER BY date DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*weights.Weight, 0)
	for rows.Next() {
		var (
			id, pid   string
			kilograms float64
			date      time.Time
		)
		if err := rows.Scan(&id, &pid, &kilograms, &date); err != nil {
			return nil, err
		}

		w, err := weights.Reconstruct(id, pid, kilograms, date)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, rows.Err()
}
