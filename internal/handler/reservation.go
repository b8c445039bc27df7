package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CastilloJC/reservas/internal/model"
	"github.com/CastilloJC/reservas/internal/service"
)

// Mensajes fijos por verbo para fallos sin clase conocida
const (
	msgCreateFailed = "Failed to create reservation"
	msgFetchFailed  = "Failed to fetch reservations"
	msgUpdateFailed = "Failed to update reservation"
	msgDeleteFailed = "Failed to delete reservation"
)

// ReservationHandler expone el recurso /api/reservations. No guarda estado
// entre peticiones: cada verbo es una traducción directa a una operación
// del servicio.
type ReservationHandler struct {
	svc *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// Register registra las rutas del recurso en el servidor Echo
func (h *ReservationHandler) Register(e *echo.Echo) {
	e.POST("/api/reservations", h.Create)
	e.GET("/api/reservations", h.List)
	e.PUT("/api/reservations", h.Update)
	e.DELETE("/api/reservations", h.Delete)
}

// Create maneja POST: crea una reserva y responde 201 con el registro
func (h *ReservationHandler) Create(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		slog.Warn("invalid create request body", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	reservation, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		slog.Error("error creating reservation", slog.Any("error", err))
		status, body := mapError(err, msgCreateFailed)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, reservation)
}

// List maneja GET: devuelve las reservas que cumplen los filtros name y
// status de la query, ordenadas por fecha ascendente
func (h *ReservationHandler) List(c echo.Context) error {
	name := c.QueryParam("name")
	status := c.QueryParam("status")

	reservations, err := h.svc.List(c.Request().Context(), name, status)
	if err != nil {
		slog.Error("error fetching reservations", slog.Any("error", err))
		mappedStatus, body := mapError(err, msgFetchFailed)
		return c.JSON(mappedStatus, body)
	}

	return c.JSON(http.StatusOK, reservations)
}

// Update maneja PUT: reemplaza los campos mutables del registro indicado
// por el ID del cuerpo
func (h *ReservationHandler) Update(c echo.Context) error {
	var req model.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		slog.Warn("invalid update request body", slog.Any("error", err))
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	reservation, err := h.svc.Update(c.Request().Context(), req)
	if err != nil {
		slog.Error("error updating reservation", slog.Int64("id", req.ID), slog.Any("error", err))
		status, body := mapError(err, msgUpdateFailed)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, reservation)
}

// Delete maneja DELETE: elimina el registro indicado por el parámetro id
// de la query
func (h *ReservationHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		slog.Error("error deleting reservation", slog.String("id", id), slog.Any("error", err))
		status, body := mapError(err, msgDeleteFailed)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Reservation deleted successfully"})
}
