package model

import (
	"errors"
	"strings"
)

// Errores de validación de las peticiones. Se reportan al cliente con
// código 400, por lo que el mensaje es el mismo que muestra el formulario.
var (
	ErrNameRequired     = errors.New("Nombre es requerido")
	ErrNumPeopleInvalid = errors.New("El número de personas debe ser mayor a 0")
	ErrDateTimeRequired = errors.New("Fecha y hora es requerida")
	ErrDateTimeInvalid  = errors.New("Fecha y hora no tiene un formato válido")
	ErrStatusInvalid    = errors.New("Invalid status value")
)

// CreateReservationRequest es el cuerpo de POST /api/reservations.
// El estado es opcional; si viene vacío se usa DefaultStatus.
type CreateReservationRequest struct {
	Name      string `json:"name"`
	NumPeople int    `json:"numPeople"`
	DateTime  string `json:"dateTime"`
	Status    Status `json:"status"`
}

// Validate comprueba las restricciones del esquema antes de tocar la base
// de datos
func (r CreateReservationRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.NumPeople < 1 {
		return ErrNumPeopleInvalid
	}
	if strings.TrimSpace(r.DateTime) == "" {
		return ErrDateTimeRequired
	}
	if r.Status != "" && !r.Status.Valid() {
		return ErrStatusInvalid
	}
	return nil
}

// UpdateReservationRequest es el cuerpo de PUT /api/reservations. Reemplaza
// todos los campos mutables del registro identificado por ID.
type UpdateReservationRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	NumPeople int    `json:"numPeople"`
	DateTime  string `json:"dateTime"`
	Status    Status `json:"status"`
}

func (r UpdateReservationRequest) Validate() error {
	if r.ID < 1 {
		return errors.New("ID es requerido")
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.NumPeople < 1 {
		return ErrNumPeopleInvalid
	}
	if strings.TrimSpace(r.DateTime) == "" {
		return ErrDateTimeRequired
	}
	if !r.Status.Valid() {
		return ErrStatusInvalid
	}
	return nil
}

// ListFilter es el par de filtros activo de la lista. Ambos campos son
// opcionales: nombre filtra por subcadena sin distinguir mayúsculas y
// estado por igualdad exacta.
type ListFilter struct {
	Name   string
	Status string
}
