// Package batch contiene el importador masivo de reservas: un proceso de
// una sola pasada que lee data.json e inserta cada registro a través del
// servicio de reservas, sin pasar por la capa HTTP.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"

	"github.com/CastilloJC/reservas/internal/common/config"
	"github.com/CastilloJC/reservas/internal/common/utils"
	"github.com/CastilloJC/reservas/internal/model"
	"github.com/CastilloJC/reservas/internal/repository"
	"github.com/CastilloJC/reservas/internal/service"
)

// reservationCreator es la operación del servicio que necesita el
// importador
type reservationCreator interface {
	Create(ctx context.Context, req model.CreateReservationRequest) (*model.Reservation, error)
}

// ImportService ejecuta la importación masiva. Cuando corre como actividad
// de Step Functions reporta el resultado del lote con el task token.
type ImportService struct {
	args      []model.CreateReservationRequest
	db        *repository.DB
	creator   reservationCreator
	sfnClient *sfn.Client
	cfg       *config.Config
}

// NewImportService crea el importador con su propia conexión a la base de
// datos
func NewImportService(cfg *config.Config, sfnClient *sfn.Client) (*ImportService, error) {
	db, err := repository.NewDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return &ImportService{
		db:        db,
		creator:   service.NewReservationService(repository.NewReservationRepository(db)),
		sfnClient: sfnClient,
		cfg:       cfg,
	}, nil
}

// Close libera la conexión con la base de datos
func (s *ImportService) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SetArgs fija los registros a importar
func (s *ImportService) SetArgs(args []model.CreateReservationRequest) {
	s.args = args
}

// LoadFile lee el archivo data.json y carga sus registros como argumentos
func (s *ImportService) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var records []model.CreateReservationRequest
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	s.args = records
	return nil
}

// Run inserta cada registro del lote. El lote falla completo ante el
// primer registro rechazado.
func (s *ImportService) Run(ctx context.Context) error {
	records := s.args
	log.Printf("Starting import batch process for %d records...", len(records))

	startTime := time.Now()

	for i, record := range records {
		if _, err := s.creator.Create(ctx, record); err != nil {
			return utils.GetStackWithError(fmt.Errorf("failed to import record %d (%s): %w", i, record.Name, err))
		}
	}

	if err := s.sendTaskSuccess(ctx, len(records)); err != nil {
		return utils.GetStackWithError(fmt.Errorf("failed to send task success: %w", err))
	}

	duration := time.Since(startTime)
	log.Printf("Import batch process completed successfully. Imported: %d, Duration: %v", len(records), duration)
	return nil
}

// sendTaskSuccess notifica a Step Functions el resultado del lote. En
// entorno local no hay flujo que notificar y se omite.
func (s *ImportService) sendTaskSuccess(ctx context.Context, imported int) error {
	if os.Getenv("ENV") == "LOCAL" || s.sfnClient == nil {
		log.Printf("Local environment detected. Skipping Step Functions task success notification")
		return nil
	}

	taskToken := s.cfg.SFN.TaskToken
	if taskToken == "" {
		return fmt.Errorf("SFN task token is not set in config")
	}

	output, err := json.Marshal(map[string]any{
		"imported": imported,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal task output: %w", err)
	}

	input := &sfn.SendTaskSuccessInput{
		TaskToken: aws.String(taskToken),
		Output:    aws.String(string(output)),
	}

	if _, err := s.sfnClient.SendTaskSuccess(ctx, input); err != nil {
		return err
	}

	return nil
}
