package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CastilloJC/reservas/internal/service"
)

// errorResponse es el cuerpo JSON de todo fallo de la API
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse es el cuerpo de confirmación de DELETE
type messageResponse struct {
	Message string `json:"message"`
}

// mapError traduce una clase de error del servicio a su código HTTP.
// Los fallos sin clase conocida se reportan como 500 con el mensaje fijo
// del verbo correspondiente.
func mapError(err error, fallback string) (int, errorResponse) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "Reservation not found"}
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, errorResponse{Error: invalidInputMessage(err)}
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Error: "Service unavailable"}
	}
	return http.StatusInternalServerError, errorResponse{Error: fallback}
}

// invalidInputMessage extrae el detalle de validación para el cuerpo 400,
// sin el prefijo de la clase de error
func invalidInputMessage(err error) string {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, service.ErrInvalidInput.Error()+": "); ok {
		return detail
	}
	return msg
}
