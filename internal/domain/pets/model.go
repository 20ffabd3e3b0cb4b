package pets

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "pet-weight-tracker/internal/shared/errors"
)

const maxNameLength = 255

// Pet es una entidad auto-validada: toda construcción y mutación pasa
// por validate(). El nombre se guarda tal cual llegó (sin trimear); el
// trim es solo para el chequeo de vacío.
type Pet struct {
	id   string
	name string
}

// New crea una mascota con un ID fresco. UUIDv7 para que los IDs sean
// ordenables por tiempo de creación.
func New(name string) (*Pet, error) {
	return Reconstruct(newID(), name)
}

// Reconstruct rehidrata una mascota con un ID ya conocido (storage).
func Reconstruct(id, name string) (*Pet, error) {
	p := &Pet{id: id, name: name}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pet) ID() string   { return p.id }
func (p *Pet) Name() string { return p.name }

// Rename asigna y recién después re-valida. Si falla, la entidad queda
// en estado transitorio inválido y debe descartarse (sin rollback).
func (p *Pet) Rename(name string) error {
	p.name = name
	return p.validate()
}

func (p *Pet) validate() error {
	if strings.TrimSpace(p.name) == "" {
		return apperrors.NewDomain("Pet name is required")
	}
	if utf8.RuneCountInString(p.name) > maxNameLength {
		return apperrors.NewDomain("Pet name cannot exceed 255 characters")
	}
	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 solo falla si no hay fuente de aleatoriedad; v4 como último recurso
		return uuid.NewString()
	}
	return id.String()
}
