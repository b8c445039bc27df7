package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CastilloJC/reservas/internal/model"
)

// ErrNotFound indica que ningún registro coincide con el ID solicitado
var ErrNotFound = errors.New("reservation not found")

// ReservationRepository es la interfaz de persistencia de reservas
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	Find(ctx context.Context, filter model.ListFilter) ([]model.Reservation, error)
	Update(ctx context.Context, reservation *model.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type ReservationRepositoryImpl struct {
	db *DB
}

func NewReservationRepository(db *DB) *ReservationRepositoryImpl {
	return &ReservationRepositoryImpl{db: db}
}

// Create inserta la reserva y asigna el ID generado por la base de datos
func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation *model.Reservation) error {
	query := `
		INSERT INTO reservations (
			name,
			num_people,
			date_time,
			status,
			created_at,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING id`

	now := time.Now().UTC()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	err := r.db.QueryRowxContext(ctx,
		query,
		reservation.Name,
		reservation.NumPeople,
		reservation.DateTime,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	).Scan(&reservation.ID)

	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// Find devuelve las reservas que cumplen el par de filtros, ordenadas por
// fecha ascendente. Un filtro vacío no restringe: el nombre se compara como
// subcadena sin distinguir mayúsculas y el estado por igualdad.
func (r *ReservationRepositoryImpl) Find(ctx context.Context, filter model.ListFilter) ([]model.Reservation, error) {
	query := `
		SELECT
			id,
			name,
			num_people,
			date_time,
			status,
			created_at,
			updated_at
		FROM reservations
		WHERE name ILIKE '%' || $1 || '%'
		AND ($2 = '' OR status = $2)
		ORDER BY date_time ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, filter.Name, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	// Lista vacía en lugar de nil para que la API responda [] y no null
	reservations := make([]model.Reservation, 0)
	for rows.Next() {
		var reservation model.Reservation
		if err := rows.StructScan(&reservation); err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

// Update reemplaza todos los campos mutables del registro. La fecha de
// creación se conserva y se lee de vuelta para devolver el registro completo.
func (r *ReservationRepositoryImpl) Update(ctx context.Context, reservation *model.Reservation) error {
	query := `
		UPDATE reservations
		SET name = $1,
			num_people = $2,
			date_time = $3,
			status = $4,
			updated_at = $5
		WHERE id = $6
		RETURNING created_at`

	reservation.UpdatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx,
		query,
		reservation.Name,
		reservation.NumPeople,
		reservation.DateTime,
		reservation.Status,
		reservation.UpdatedAt,
		reservation.ID,
	).Scan(&reservation.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrNotFound, reservation.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	return nil
}

// Delete elimina el registro de forma definitiva
func (r *ReservationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM reservations
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return nil
}
