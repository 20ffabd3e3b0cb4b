package pets

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pet-weight-tracker/internal/platform/logger"
	apperrors "pet-weight-tracker/internal/shared/errors"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Patch("/{petID}", renamePetHandler(svc, log))
	})
}

// createPetRequest usa puntero para distinguir campo ausente de string vacío.
type createPetRequest struct {
	Name *string `json:"name"`
}

type renamePetRequest struct {
	Name *string `json:"name"`
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota nueva. El nombre debe tener entre 1 y 255 caracteres.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "Validation failed / invariante de dominio"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperrors.Respond(w, log, apperrors.NewValidation("body must be valid JSON"))
			return
		}

		if msgs := validateName(req.Name); len(msgs) > 0 {
			apperrors.Respond(w, log, apperrors.NewValidation(msgs...))
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{Name: *req.Name})
		if err != nil {
			apperrors.Respond(w, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota (UUID)"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "petID inválido"
// @Failure 404 {string} string "Pet with id {petID} not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if uuid.Validate(petID) != nil {
			apperrors.Respond(w, log, apperrors.NewValidation("petID must be a valid UUID"))
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			apperrors.Respond(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// renamePetHandler godoc
// @Summary Renombrar mascota
// @Description Reemplaza el nombre de la mascota; se re-validan las invariantes.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota (UUID)"
// @Param payload body renamePetRequest true "Nuevo nombre"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "Validation failed / invariante de dominio"
// @Failure 404 {string} string "Pet with id {petID} not found"
// @Router /pets/{petID} [patch]
func renamePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if uuid.Validate(petID) != nil {
			apperrors.Respond(w, log, apperrors.NewValidation("petID must be a valid UUID"))
			return
		}

		var req renamePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperrors.Respond(w, log, apperrors.NewValidation("body must be valid JSON"))
			return
		}

		if msgs := validateName(req.Name); len(msgs) > 0 {
			apperrors.Respond(w, log, apperrors.NewValidation(msgs...))
			return
		}

		p, err := svc.Rename(r.Context(), petID, *req.Name)
		if err != nil {
			apperrors.Respond(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// validateName chequea forma y rango en el borde; las invariantes de
// dominio (nombre solo-espacios, etc.) corren después en la entidad.
func validateName(name *string) []string {
	if name == nil {
		return []string{"name is required"}
	}
	if n := utf8.RuneCountInString(*name); n < 1 || n > maxNameLength {
		return []string{"name must be between 1 and 255 characters"}
	}
	return nil
}

func toPetResponse(p *Pet) petResponse {
	return petResponse{
		ID:   p.ID(),
		Name: p.Name(),
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (pets/weights) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
