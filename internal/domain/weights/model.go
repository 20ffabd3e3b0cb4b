package weights

import (
	"time"

	"github.com/google/uuid"

	apperrors "pet-weight-tracker/internal/shared/errors"
)

const maxKilograms = 1000

// now se lee en el momento de validar, no al construir: una mutación
// posterior usa un "ahora" fresco. Reemplazable en tests.
var now = time.Now

// Weight es un registro de peso de una mascota. id y petID son
// inmutables una vez construido; kilograms y date se re-validan
// (las tres invariantes, en orden) en cada mutación.
type Weight struct {
	id        string
	petID     string
	kilograms float64
	date      time.Time
}

// New crea un registro con ID fresco. La existencia de la mascota NO
// se chequea acá: es responsabilidad del use case, antes de construir.
func New(petID string, kilograms float64, date time.Time) (*Weight, error) {
	return Reconstruct(newID(), petID, kilograms, date)
}

// Reconstruct rehidrata un registro con ID conocido (storage).
func Reconstruct(id, petID string, kilograms float64, date time.Time) (*Weight, error) {
	w := &Weight{id: id, petID: petID, kilograms: kilograms, date: date}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Weight) ID() string         { return w.id }
func (w *Weight) PetID() string      { return w.petID }
func (w *Weight) Kilograms() float64 { return w.kilograms }
func (w *Weight) Date() time.Time    { return w.date }

// SetKilograms asigna y después re-valida. Si falla, la entidad queda
// en estado transitorio inválido y debe descartarse (sin rollback).
func (w *Weight) SetKilograms(v float64) error {
	w.kilograms = v
	return w.validate()
}

func (w *Weight) SetDate(d time.Time) error {
	w.date = d
	return w.validate()
}

// validate corre los tres chequeos siempre en el mismo orden; solo se
// reporta la primera falla.
func (w *Weight) validate() error {
	if w.kilograms <= 0 {
		return apperrors.NewDomain("Weight must be greater than 0")
	}
	if w.kilograms > maxKilograms {
		return apperrors.NewDomain("Weight cannot exceed 1000 kg")
	}
	// Comparación a granularidad de día calendario en UTC: un peso
	// fechado hoy vale sin importar la hora; mañana siempre se rechaza.
	if startOfDay(w.date).After(startOfDay(now())) {
		return apperrors.NewDomain("Weight date cannot be in the future")
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
