package model

import "time"

// Status representa el estado del ciclo de vida de una reserva
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

// Valid indica si el valor pertenece al conjunto de estados permitidos
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// DefaultStatus es el estado asignado cuando una reserva se crea sin estado
func DefaultStatus() Status {
	return StatusPending
}

// Reservation es el registro de reserva tal como se persiste en la tabla
// reservations. El ID lo genera la base de datos y es inmutable.
type Reservation struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	NumPeople int       `db:"num_people" json:"numPeople"`
	DateTime  time.Time `db:"date_time" json:"dateTime"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Formatos de fecha aceptados en las peticiones. El formulario envía el
// formato de un input datetime-local, sin zona horaria; los clientes de la
// API suelen enviar RFC 3339.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime convierte la fecha recibida en la petición a un instante
// absoluto en UTC
func ParseDateTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
