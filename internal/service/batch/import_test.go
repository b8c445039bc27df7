package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CastilloJC/reservas/internal/common/config"
	"github.com/CastilloJC/reservas/internal/model"
)

// mockCreator registra las peticiones recibidas y puede fallar a partir de
// un índice dado
type mockCreator struct {
	created []model.CreateReservationRequest
	failAt  int
	err     error
}

func (m *mockCreator) Create(ctx context.Context, req model.CreateReservationRequest) (*model.Reservation, error) {
	if m.err != nil && len(m.created) == m.failAt {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &model.Reservation{ID: int64(len(m.created)), Name: req.Name}, nil
}

func newTestImportService(creator *mockCreator) *ImportService {
	return &ImportService{
		creator: creator,
		cfg:     &config.Config{},
	}
}

func TestImportServiceRun(t *testing.T) {
	t.Setenv("ENV", "LOCAL")

	tests := []struct {
		name    string
		records []model.CreateReservationRequest
		failAt  int
		err     error
		wantErr bool
		created int
	}{
		{
			name:    "lote vacío",
			records: nil,
			created: 0,
		},
		{
			name: "lote con dos registros",
			records: []model.CreateReservationRequest{
				{Name: "Ana", NumPeople: 2, DateTime: "2024-05-01T19:00"},
				{Name: "Pedro", NumPeople: 3, DateTime: "2024-05-02T20:00", Status: model.StatusConfirmed},
			},
			created: 2,
		},
		{
			name: "el lote falla ante el primer registro rechazado",
			records: []model.CreateReservationRequest{
				{Name: "Ana", NumPeople: 2, DateTime: "2024-05-01T19:00"},
				{Name: "", NumPeople: 0, DateTime: ""},
				{Name: "Pedro", NumPeople: 3, DateTime: "2024-05-02T20:00"},
			},
			failAt:  1,
			err:     errors.New("invalid input"),
			wantErr: true,
			created: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &mockCreator{failAt: tt.failAt, err: tt.err}
			svc := newTestImportService(creator)
			svc.SetArgs(tt.records)

			err := svc.Run(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("Run() no conservó el error original: %v", err)
				}
				// Los fallos del lote llevan el stack trace para el log fatal
				if !strings.Contains(err.Error(), "Stack trace:") {
					t.Errorf("Run() sin stack trace en el error: %v", err)
				}
			}
			if len(creator.created) != tt.created {
				t.Errorf("Run() importó %d registros, want %d", len(creator.created), tt.created)
			}
		})
	}
}

func TestImportServiceLoadFile(t *testing.T) {
	t.Run("archivo válido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		content := `[
			{"name":"Ana","numPeople":2,"dateTime":"2024-05-01T19:00"},
			{"name":"Pedro","numPeople":4,"dateTime":"2024-05-02T20:00","status":"confirmed"}
		]`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		svc := newTestImportService(&mockCreator{})
		if err := svc.LoadFile(path); err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if len(svc.args) != 2 {
			t.Errorf("LoadFile() cargó %d registros, want 2", len(svc.args))
		}
		if svc.args[1].Status != model.StatusConfirmed {
			t.Errorf("LoadFile() status = %v, want confirmed", svc.args[1].Status)
		}
	})

	t.Run("archivo inexistente", func(t *testing.T) {
		svc := newTestImportService(&mockCreator{})
		if err := svc.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("LoadFile() con archivo inexistente no devolvió error")
		}
	})

	t.Run("JSON malformado", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		if err := os.WriteFile(path, []byte(`{"not":"an array"`), 0o644); err != nil {
			t.Fatal(err)
		}

		svc := newTestImportService(&mockCreator{})
		if err := svc.LoadFile(path); err == nil {
			t.Error("LoadFile() con JSON malformado no devolvió error")
		}
	})
}
