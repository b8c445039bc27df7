package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/joho/godotenv"

	"github.com/CastilloJC/reservas/internal/common/config"
	"github.com/CastilloJC/reservas/internal/common/utils"
	"github.com/CastilloJC/reservas/internal/service/batch"
)

const projectName = "reservas-import"

func main() {
	// Argumentos de línea de comandos
	file := flag.String("file", "data.json", "archivo JSON con las reservas a importar")
	timeout := flag.Duration("timeout", 5*time.Minute, "tiempo máximo del proceso de importación")
	flag.Parse()

	// Variables de entorno desde .env para el desarrollo local
	_ = godotenv.Overload()

	// El último argumento es el task token de Step Functions.
	// En ENV=LOCAL el importador corre sin flujo que notificar.
	taskToken := "DUMMY_TASK_TOKEN"
	if os.Getenv("ENV") != "LOCAL" {
		taskToken = flag.Arg(flag.NArg() - 1)
		if taskToken == "" {
			log.Fatalf("Task token is required")
		}
	}

	cfg, err := config.LoadBatch(taskToken)
	if err != nil {
		log.Fatalf("Failed to load config: %v", utils.GetStackWithError(err))
	}

	// Configuración de X-Ray
	if cfg.EnableTracing {
		if err := xray.Configure(xray.Config{
			DaemonAddr:     "127.0.0.1:2000",
			ServiceVersion: "1.0.0",
		}); err != nil {
			log.Printf("Failed to configure X-Ray: %v", err)
			if configErr := xray.Configure(xray.Config{}); configErr != nil {
				log.Fatalf("Failed to configure default X-Ray settings: %v", configErr)
			}
		}
		os.Setenv("AWS_XRAY_CONTEXT_MISSING", "LOG_ERROR")
	}

	// Cliente de Step Functions fuera del entorno local
	var sfnClient *sfn.Client
	if os.Getenv("ENV") != "LOCAL" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			log.Fatalf("Failed to load AWS config: %v", utils.GetStackWithError(err))
		}
		sfnClient = sfn.NewFromConfig(awsCfg)
	}

	service, err := batch.NewImportService(cfg, sfnClient)
	if err != nil {
		log.Fatalf("Failed to create import service: %v", utils.GetStackWithError(err))
	}
	defer service.Close()

	if err := service.LoadFile(*file); err != nil {
		log.Fatalf("Failed to load import file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Segmento de X-Ray del proceso
	if cfg.EnableTracing {
		var seg *xray.Segment
		ctx, seg = xray.BeginSegment(ctx, projectName)
		defer seg.Close(nil)

		if err := seg.AddMetadata("file", *file); err != nil {
			log.Printf("Failed to add file metadata: %v", err)
		}
	}

	// Manejo de señales
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- utils.RunWithTimeout(ctx, *timeout, service.Run)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			// Run ya adjunta el stack trace al error
			log.Printf("Import process failed: %v", err)

			// Fuera del entorno local se notifica el fallo al flujo
			if os.Getenv("ENV") != "LOCAL" && sfnClient != nil {
				input := &sfn.SendTaskFailureInput{
					TaskToken: aws.String(taskToken),
					Error:     aws.String("Import process failed"),
				}

				if _, err := sfnClient.SendTaskFailure(ctx, input); err != nil {
					log.Printf("Failed to send task failure: %v", utils.GetStackWithError(err))
				}
			}

			os.Exit(1)
		}
		log.Println("Import process completed successfully")
	}
}
