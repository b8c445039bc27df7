package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/CastilloJC/reservas/internal/model"
	"github.com/CastilloJC/reservas/internal/repository"
)

// ReservationService implementa las cuatro operaciones sobre reservas.
// Valida y da forma a las peticiones y delega la persistencia en el
// repositorio inyectado.
type ReservationService struct {
	repo repository.ReservationRepository
}

func NewReservationService(repo repository.ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

// Create inserta una reserva nueva. Si la petición no trae estado se asigna
// el estado por defecto (pending). Devuelve el registro persistido con el
// ID generado.
func (s *ReservationService) Create(ctx context.Context, req model.CreateReservationRequest) (*model.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	// Validate ya rechazó una fecha ausente; aquí el fallo es de formato
	dateTime, err := model.ParseDateTime(req.DateTime)
	if err != nil {
		return nil, invalid(model.ErrDateTimeInvalid)
	}

	status := req.Status
	if status == "" {
		status = model.DefaultStatus()
	}

	reservation := &model.Reservation{
		Name:      strings.TrimSpace(req.Name),
		NumPeople: req.NumPeople,
		DateTime:  dateTime,
		Status:    status,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, classify(err)
	}

	return reservation, nil
}

// List devuelve las reservas que cumplen ambos filtros, ordenadas por fecha
// ascendente. Un filtro vacío no restringe.
func (s *ReservationService) List(ctx context.Context, name, status string) ([]model.Reservation, error) {
	filter := model.ListFilter{
		Name:   strings.TrimSpace(name),
		Status: strings.TrimSpace(status),
	}

	reservations, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, classify(err)
	}

	return reservations, nil
}

// Update reemplaza todos los campos mutables de la reserva identificada por
// el ID de la petición; el ID mismo es inmutable
func (s *ReservationService) Update(ctx context.Context, req model.UpdateReservationRequest) (*model.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	dateTime, err := model.ParseDateTime(req.DateTime)
	if err != nil {
		return nil, invalid(model.ErrDateTimeInvalid)
	}

	reservation := &model.Reservation{
		ID:        req.ID,
		Name:      strings.TrimSpace(req.Name),
		NumPeople: req.NumPeople,
		DateTime:  dateTime,
		Status:    req.Status,
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return nil, classify(err)
	}

	return reservation, nil
}

// Delete elimina la reserva identificada por rawID. Un ID ausente o no
// numérico es entrada inválida; un ID sin registro es no encontrado.
func (s *ReservationService) Delete(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id < 1 {
		return invalid(errInvalidID)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return classify(err)
	}

	return nil
}
