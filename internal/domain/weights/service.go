package weights

import (
	"context"
	"errors"
	"time"

	"pet-weight-tracker/internal/domain/pets"
	apperrors "pet-weight-tracker/internal/shared/errors"
)

type Service struct {
	repo Repository
	pets pets.Repository
}

func NewService(repo Repository, petsRepo pets.Repository) *Service {
	return &Service{repo: repo, pets: petsRepo}
}

type CreateInput struct {
	Kilograms float64
	Date      time.Time
}

// Create verifica primero que la mascota exista; recién después se
// construye (y valida) la entidad. Un peso inválido sobre una mascota
// inexistente reporta not found, no el error de dominio.
func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (*Weight, error) {
	if err := s.ensurePetExists(ctx, petID); err != nil {
		return nil, err
	}

	w, err := New(petID, in.Kilograms, in.Date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ListByPet falla con not found antes de tocar el listado: si la
// mascota no existe, la query de pesos nunca se ejecuta.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]*Weight, error) {
	if err := s.ensurePetExists(ctx, petID); err != nil {
		return nil, err
	}
	return s.repo.FindByPetID(ctx, petID)
}

func (s *Service) ensurePetExists(ctx context.Context, petID string) error {
	if _, err := s.pets.FindByID(ctx, petID); err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return apperrors.NewNotFound("Pet", petID)
		}
		return err
	}
	return nil
}
