package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CastilloJC/reservas/internal/model"
)

// newTestServer levanta una API mínima en memoria que cuenta los GET
// recibidos, para poder observar la caché y la revalidación
func newTestServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var gets atomic.Int64
	reservations := []model.Reservation{
		{ID: 1, Name: "Ana", NumPeople: 2, DateTime: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC), Status: model.StatusPending},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets.Add(1)
			json.NewEncoder(w).Encode(reservations)
		case http.MethodPost:
			var req model.CreateReservationRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NumPeople < 1 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "El número de personas debe ser mayor a 0"})
				return
			}
			created := model.Reservation{ID: int64(len(reservations) + 1), Name: req.Name, NumPeople: req.NumPeople, Status: model.StatusPending}
			reservations = append(reservations, created)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(created)
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"message": "Reservation deleted successfully"})
		case http.MethodPut:
			var req model.UpdateReservationRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(model.Reservation{ID: req.ID, Name: req.Name, NumPeople: req.NumPeople, Status: req.Status})
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &gets
}

func TestClientListCachesByFilterPair(t *testing.T) {
	server, gets := newTestServer(t)
	c := New(server.URL, nil)
	ctx := context.Background()

	first := c.List(ctx, "", "")
	if !first.OK {
		t.Fatalf("List() error = %q", first.Error)
	}
	if len(first.Data) != 1 {
		t.Fatalf("List() devolvió %d reservas, want 1", len(first.Data))
	}

	// La segunda lectura del mismo par sale de la caché
	second := c.List(ctx, "", "")
	if !second.OK {
		t.Fatalf("List() error = %q", second.Error)
	}
	if got := gets.Load(); got != 1 {
		t.Errorf("el servidor recibió %d GET, want 1", got)
	}

	// Un par de filtros distinto sí emite una nueva lectura
	c.List(ctx, "ana", "pending")
	if got := gets.Load(); got != 2 {
		t.Errorf("el servidor recibió %d GET, want 2", got)
	}
}

func TestClientWriteRevalidates(t *testing.T) {
	server, gets := newTestServer(t)
	c := New(server.URL, nil)
	ctx := context.Background()

	c.List(ctx, "", "")
	if got := gets.Load(); got != 1 {
		t.Fatalf("el servidor recibió %d GET, want 1", got)
	}

	created := c.Create(ctx, model.CreateReservationRequest{
		Name:      "Pedro",
		NumPeople: 3,
		DateTime:  "2024-05-02T20:00",
	})
	if !created.OK {
		t.Fatalf("Create() error = %q", created.Error)
	}

	// La escritura revalidó el par activo
	if got := gets.Load(); got != 2 {
		t.Errorf("el servidor recibió %d GET tras Create, want 2", got)
	}

	// La lectura siguiente usa la caché revalidada
	refreshed := c.List(ctx, "", "")
	if !refreshed.OK {
		t.Fatalf("List() error = %q", refreshed.Error)
	}
	if got := gets.Load(); got != 2 {
		t.Errorf("el servidor recibió %d GET tras la relectura, want 2", got)
	}
	if len(refreshed.Data) != 2 {
		t.Errorf("List() tras Create devolvió %d reservas, want 2", len(refreshed.Data))
	}
}

func TestClientDelete(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL, nil)

	result := c.Delete(context.Background(), 1)
	if !result.OK {
		t.Fatalf("Delete() error = %q", result.Error)
	}
	if result.Data != "Reservation deleted successfully" {
		t.Errorf("Delete() message = %q", result.Data)
	}
}

func TestClientSurfacesAPIError(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL, nil)

	result := c.Create(context.Background(), model.CreateReservationRequest{
		Name:      "Ana",
		NumPeople: 0,
		DateTime:  "2024-05-01T19:00",
	})
	if result.OK {
		t.Fatal("Create() con cuerpo inválido devolvió ok")
	}
	if result.Error != "El número de personas debe ser mayor a 0" {
		t.Errorf("Create() error = %q", result.Error)
	}
}

func TestClientTransportError(t *testing.T) {
	server, _ := newTestServer(t)
	server.Close()
	c := New(server.URL, nil)

	result := c.List(context.Background(), "", "")
	if result.OK {
		t.Fatal("List() contra un servidor caído devolvió ok")
	}
	if result.Error != "An unexpected error occurred" {
		t.Errorf("List() error = %q", result.Error)
	}
}

func TestClientNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	c := New(server.URL, nil)

	result := c.List(context.Background(), "", "")
	if result.OK {
		t.Fatal("List() con error no JSON devolvió ok")
	}
	if result.Error != "API request failed" {
		t.Errorf("List() error = %q", result.Error)
	}
}
