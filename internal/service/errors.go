package service

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/CastilloJC/reservas/internal/repository"
)

// Clases de error del servicio. El handler HTTP traduce cada una a su
// código de estado: 404, 400 y 503 respectivamente; cualquier otro fallo
// de la capa de persistencia se reporta como 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("unavailable")
)

var errInvalidID = errors.New("ID inválido")

// Clases de SQLSTATE de PostgreSQL relevantes para la traducción
const (
	pqClassConnection         = "08"
	pqClassIntegrityViolation = "23"
)

// classify traduce un error de persistencia a una clase de error del
// servicio. Las violaciones de restricciones se tratan como entrada
// inválida y los fallos de conexión como servicio no disponible.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case pqClassIntegrityViolation:
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case pqClassConnection:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	return err
}

// invalid marca un error de validación como entrada inválida
func invalid(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, err)
}
