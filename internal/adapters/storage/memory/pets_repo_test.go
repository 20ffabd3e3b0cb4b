package memory

import (
	"context"
	"errors"
	"testing"

	"pet-weight-tracker/internal/domain/pets"
)

func TestPetRepo_SaveAndFindByID(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	p, err := pets.New("Max")
	if err != nil {
		t.Fatalf("pets.New: %v", err)
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.FindByID(ctx, p.ID())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ID() != p.ID() || got.Name() != "Max" {
		t.Fatalf("unexpected pet: %s %q", got.ID(), got.Name())
	}
}

func TestPetRepo_FindByID_Missing(t *testing.T) {
	repo := NewPetRepo()

	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}
}

func TestPetRepo_Save_SnapshotsState(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	p, err := pets.New("Max")
	if err != nil {
		t.Fatalf("pets.New: %v", err)
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutar la entidad sin re-guardar no cambia lo persistido.
	if err := p.Rename("Milo"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	got, err := repo.FindByID(ctx, p.ID())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name() != "Max" {
		t.Fatalf("expected persisted snapshot Max, got %q", got.Name())
	}
}
