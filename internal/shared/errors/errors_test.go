package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotFoundError_Messages(t *testing.T) {
	withID := NewNotFound("Pet", "abc-123")
	if withID.Error() != "Pet with id abc-123 not found" {
		t.Fatalf("unexpected message: %q", withID.Error())
	}

	withoutID := NewNotFound("Pet", "")
	if withoutID.Error() != "Pet not found" {
		t.Fatalf("unexpected message: %q", withoutID.Error())
	}
}

func TestErrorKinds_MatchByType_NotByString(t *testing.T) {
	var err error = NewDomain("Pet name is required")

	var dErr *DomainError
	if !stderrors.As(err, &dErr) {
		t.Fatalf("expected DomainError match")
	}

	var nfErr *NotFoundError
	if stderrors.As(err, &nfErr) {
		t.Fatalf("DomainError must not match NotFoundError")
	}
	var vErr *ValidationError
	if stderrors.As(err, &vErr) {
		t.Fatalf("DomainError must not match ValidationError")
	}
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	Respond(rec, nil, err)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return rec, body
}

func TestRespond_Validation(t *testing.T) {
	rec, body := respond(t, NewValidation("name is required", "weight must be between 0.01 and 1000"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "Validation failed" {
		t.Fatalf("unexpected error field: %v", body["error"])
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) != 2 {
		t.Fatalf("expected 2 details, got %v", body["details"])
	}
	if details[0] != "name is required" {
		t.Fatalf("details must keep order, got %v", details)
	}
}

func TestRespond_NotFound(t *testing.T) {
	rec, body := respond(t, NewNotFound("Pet", "abc"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "Pet with id abc not found" {
		t.Fatalf("unexpected error field: %v", body["error"])
	}
}

func TestRespond_Domain(t *testing.T) {
	rec, body := respond(t, NewDomain("Weight cannot exceed 1000 kg"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "Weight cannot exceed 1000 kg" {
		t.Fatalf("unexpected error field: %v", body["error"])
	}
}

func TestRespond_Unexpected_HidesDetail(t *testing.T) {
	rec, body := respond(t, stderrors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// El detalle original puede exponer internals: nunca va al cliente.
	if body["error"] != "internal error" {
		t.Fatalf("unexpected error field: %v", body["error"])
	}
}
