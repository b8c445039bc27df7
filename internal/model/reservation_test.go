package model

import (
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pendiente", StatusPending, true},
		{"confirmada", StatusConfirmed, true},
		{"cancelada", StatusCanceled, true},
		{"completada", StatusCompleted, true},
		{"valor fuera del enum", Status("archived"), false},
		{"vacío", Status(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestDefaultStatus(t *testing.T) {
	if got := DefaultStatus(); got != StatusPending {
		t.Errorf("DefaultStatus() = %v, want %v", got, StatusPending)
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC 3339",
			raw:  "2024-05-01T19:00:00Z",
			want: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "RFC 3339 con zona horaria",
			raw:  "2024-05-01T19:00:00-05:00",
			want: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "formato datetime-local del formulario",
			raw:  "2024-05-01T19:00",
			want: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "con segundos sin zona horaria",
			raw:  "2024-05-01T19:00:30",
			want: time.Date(2024, 5, 1, 19, 0, 30, 0, time.UTC),
		},
		{
			name:    "fecha malformada",
			raw:     "01/05/2024 19:00",
			wantErr: true,
		},
		{
			name:    "vacía",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateTime(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
