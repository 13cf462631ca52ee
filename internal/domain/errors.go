package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// ErrContention es transitorio: seguro de reintentar con la misma petición.
var ErrContention = errors.New("inventory row is locked by a concurrent transfer")

// ValidationError entrada inválida o regla de negocio violada.
// El cliente debe corregir la petición; el motor nunca la reintenta.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError construye un ValidationError con mensaje formateado.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError el producto o la tienda referenciada no existe.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError construye un NotFoundError con mensaje formateado.
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation indica si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound indica si err es (o envuelve) un NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
