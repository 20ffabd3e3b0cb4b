package pets

import (
	"context"
	"errors"

	apperrors "pet-weight-tracker/internal/shared/errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name string
}

// Create construye la entidad (la factory valida) y la persiste.
// Un DomainError de la entidad se propaga sin envolver.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Pet, error) {
	p, err := New(in.Name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Pet, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NewNotFound("Pet", id)
		}
		return nil, err
	}
	return p, nil
}

// Rename busca, muta re-validando y persiste.
func (s *Service) Rename(ctx context.Context, id, name string) (*Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
