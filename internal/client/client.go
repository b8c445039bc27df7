// Package client es el consumidor Go de /api/reservations. Reproduce el
// contrato del navegador: toda llamada devuelve un resultado uniforme
// {ok, data, error}, las lecturas se cachean por par de filtros y cada
// escritura exitosa revalida la lectura del par activo.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/CastilloJC/reservas/internal/model"
)

const genericErrorMessage = "An unexpected error occurred"

// Result es la forma uniforme de todo resultado de la API
type Result[T any] struct {
	OK    bool
	Data  T
	Error string
}

// filterKey identifica una entrada de caché por el par (name, status)
type filterKey struct {
	Name   string
	Status string
}

// Client encapsula las cuatro llamadas HTTP al recurso de reservas.
// Sin reintentos ni timeout propio: se usa el del transporte.
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	cache   map[filterKey][]model.Reservation
	current filterKey
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		cache:   make(map[filterKey][]model.Reservation),
	}
}

// List devuelve las reservas del par de filtros. Si el par ya está en la
// caché no se emite la petición; el par pasa a ser el activo.
func (c *Client) List(ctx context.Context, name, status string) Result[[]model.Reservation] {
	key := filterKey{Name: name, Status: status}

	c.mu.Lock()
	c.current = key
	cached, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return Result[[]model.Reservation]{OK: true, Data: cached}
	}

	return c.fetch(ctx, key)
}

// Create registra una reserva nueva y revalida la lectura activa
func (c *Client) Create(ctx context.Context, req model.CreateReservationRequest) Result[model.Reservation] {
	result := doJSON[model.Reservation](ctx, c, http.MethodPost, "/api/reservations", req)
	if result.OK {
		c.Revalidate(ctx)
	}
	return result
}

// Update reemplaza una reserva existente y revalida la lectura activa
func (c *Client) Update(ctx context.Context, req model.UpdateReservationRequest) Result[model.Reservation] {
	result := doJSON[model.Reservation](ctx, c, http.MethodPut, "/api/reservations", req)
	if result.OK {
		c.Revalidate(ctx)
	}
	return result
}

// Delete elimina la reserva indicada y revalida la lectura activa
func (c *Client) Delete(ctx context.Context, id int64) Result[string] {
	path := fmt.Sprintf("/api/reservations?id=%d", id)
	result := doJSON[messageBody](ctx, c, http.MethodDelete, path, nil)
	if !result.OK {
		return Result[string]{Error: result.Error}
	}
	c.Revalidate(ctx)
	return Result[string]{OK: true, Data: result.Data.Message}
}

// Revalidate descarta la entrada de caché del par activo y vuelve a emitir
// la lectura
func (c *Client) Revalidate(ctx context.Context) Result[[]model.Reservation] {
	c.mu.Lock()
	key := c.current
	delete(c.cache, key)
	c.mu.Unlock()

	return c.fetch(ctx, key)
}

type messageBody struct {
	Message string `json:"message"`
}

func (c *Client) fetch(ctx context.Context, key filterKey) Result[[]model.Reservation] {
	query := url.Values{}
	if key.Name != "" {
		query.Set("name", key.Name)
	}
	if key.Status != "" {
		query.Set("status", key.Status)
	}
	path := "/api/reservations"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	result := doJSON[[]model.Reservation](ctx, c, http.MethodGet, path, nil)
	if result.OK {
		c.mu.Lock()
		c.cache[key] = result.Data
		c.mu.Unlock()
	}
	return result
}

// doJSON emite la petición y traduce la respuesta a la forma uniforme.
// Una respuesta no 2xx se convierte en {ok:false} con el error del cuerpo
// o un mensaje genérico si el cuerpo no es JSON.
func doJSON[T any](ctx context.Context, c *Client, method, path string, payload any) Result[T] {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Result[T]{Error: genericErrorMessage}
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Result[T]{Error: genericErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result[T]{Error: genericErrorMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return Result[T]{Error: "API request failed"}
		}
		return Result[T]{Error: apiErr.Error}
	}

	var data T
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Result[T]{Error: genericErrorMessage}
	}
	return Result[T]{OK: true, Data: data}
}
