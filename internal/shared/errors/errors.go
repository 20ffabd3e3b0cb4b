// Package errors define la taxonomía de fallas que comparten todas las
// capas: ValidationError (borde HTTP), NotFoundError (referencia a una
// entidad inexistente) y DomainError (invariante de entidad violada).
// Los tipos se distinguen con errors.As, nunca comparando strings.
package errors

import (
	"fmt"
	"strings"
)

// ValidationError agrupa fallas estructurales detectadas en el borde
// (campo faltante, tipo incorrecto, fuera de rango) antes de construir
// cualquier objeto de dominio. Un mensaje por regla violada.
type ValidationError struct {
	Messages []string
}

func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NotFoundError indica que una entidad referenciada no existe.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// DomainError indica una invariante violada durante la construcción o
// mutación de una entidad.
type DomainError struct {
	Message string
}

func NewDomain(message string) *DomainError {
	return &DomainError{Message: message}
}

func (e *DomainError) Error() string {
	return e.Message
}
