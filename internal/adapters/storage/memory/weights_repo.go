package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-weight-tracker/internal/domain/weights"
)

type weightRecord struct {
	id        string
	petID     string
	kilograms float64
	date      time.Time
}

type weightRepo struct {
	mu      sync.RWMutex
	byPetID map[string][]weightRecord
}

func NewWeightRepo() weights.Repository {
	return &weightRepo{
		byPetID: make(map[string][]weightRecord),
	}
}

func (r *weightRepo) Save(ctx context.Context, w *weights.Weight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := weightRecord{
		id:        w.ID(),
		petID:     w.PetID(),
		kilograms: w.Kilograms(),
		date:      w.Date(),
	}

	recs := r.byPetID[w.PetID()]
	for i := range recs {
		if recs[i].id == rec.id {
			recs[i] = rec
			return nil
		}
	}
	r.byPetID[w.PetID()] = append(recs, rec)
	return nil
}

func (r *weightRepo) FindByPetID(ctx context.Context, petID string) ([]*weights.Weight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := r.byPetID[petID]

	// Orden por fecha descendente; con fechas iguales queda el orden de
	// inserción (sort estable sobre la copia).
	sorted := append([]weightRecord(nil), recs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.After(sorted[j].date)
	})

	out := make([]*weights.Weight, 0, len(sorted))
	for _, rec := range sorted {
		w, err := weights.Reconstruct(rec.id, rec.petID, rec.kilograms, rec.date)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
