package weights

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pet-weight-tracker/internal/platform/logger"
	apperrors "pet-weight-tracker/internal/shared/errors"
)

// dateLayout es el único formato aceptado y devuelto para fechas de
// peso: día calendario, sin componente horario.
const dateLayout = "2006-01-02"

const minBoundaryKilograms = 0.01

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets/{petID}/weights", func(wr chi.Router) {
		wr.Post("/", createWeightHandler(svc, log))
		wr.Get("/", listWeightsHandler(svc, log))
	})
}

// createWeightRequest usa punteros para distinguir ausente de cero.
type createWeightRequest struct {
	Weight *float64 `json:"weight"`
	Date   *string  `json:"date"` // YYYY-MM-DD
}

// weightResponse representa un registro de peso devuelto por la API.
type weightResponse struct {
	ID     string  `json:"id"`
	PetID  string  `json:"pet_id"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"` // YYYY-MM-DD
}

// createWeightHandler godoc
// @Summary Registrar peso
// @Description Registra un peso (kg) para la mascota indicada. weight en [0.01, 1000], date en formato YYYY-MM-DD y no futura.
// @Tags weights
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota (UUID)"
// @Param payload body createWeightRequest true "Peso y fecha"
// @Success 201 {object} weightResponse
// @Failure 400 {string} string "Validation failed / invariante de dominio"
// @Failure 404 {string} string "Pet with id {petID} not found"
// @Router /pets/{petID}/weights [post]
func createWeightHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		var req createWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperrors.Respond(w, log, apperrors.NewValidation("body must be valid JSON"))
			return
		}

		msgs, date := validateCreateWeight(petID, req)
		if len(msgs) > 0 {
			apperrors.Respond(w, log, apperrors.NewValidation(msgs...))
			return
		}

		wt, err := svc.Create(r.Context(), petID, CreateInput{
			Kilograms: *req.Weight,
			Date:      date,
		})
		if err != nil {
			apperrors.Respond(w, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toWeightResponse(wt))
	}
}

// listWeightsHandler godoc
// @Summary Historial de pesos
// @Description Lista los pesos de la mascota ordenados por fecha descendente. Lista vacía si no hay registros.
// @Tags weights
// @Produce json
// @Param petID path string true "ID de la mascota (UUID)"
// @Success 200 {array} weightResponse
// @Failure 400 {string} string "petID inválido"
// @Failure 404 {string} string "Pet with id {petID} not found"
// @Router /pets/{petID}/weights [get]
func listWeightsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if uuid.Validate(petID) != nil {
			apperrors.Respond(w, log, apperrors.NewValidation("petID must be a valid UUID"))
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			apperrors.Respond(w, log, err)
			return
		}

		out := make([]weightResponse, 0, len(items))
		for _, wt := range items {
			out = append(out, toWeightResponse(wt))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// validateCreateWeight junta un mensaje por regla violada; solo si
// todas pasan se llega al use case.
func validateCreateWeight(petID string, req createWeightRequest) ([]string, time.Time) {
	msgs := make([]string, 0, 3)

	if uuid.Validate(petID) != nil {
		msgs = append(msgs, "petID must be a valid UUID")
	}

	switch {
	case req.Weight == nil:
		msgs = append(msgs, "weight is required")
	case *req.Weight < minBoundaryKilograms || *req.Weight > maxKilograms:
		msgs = append(msgs, "weight must be between 0.01 and 1000")
	}

	var date time.Time
	switch {
	case req.Date == nil:
		msgs = append(msgs, "date is required")
	default:
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			msgs = append(msgs, "date must be a valid YYYY-MM-DD date")
		} else {
			date = parsed
		}
	}

	return msgs, date
}

func toWeightResponse(w *Weight) weightResponse {
	return weightResponse{
		ID:     w.ID(),
		PetID:  w.PetID(),
		Weight: w.Kilograms(),
		Date:   w.Date().Format(dateLayout),
	}
}

// writeJSON duplicado a propósito (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
