package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/CastilloJC/reservas/internal/repository"
)

type Config struct {
	DB     *repository.DBConfig
	Server struct {
		Port string
	}
	Logging struct {
		Level  string
		Format string
	}
	SFN struct {
		TaskToken string
	}
	EnableTracing bool
}

// Load lee la configuración desde variables de entorno con valores por
// defecto pensados para desarrollo local
func Load() (*Config, error) {
	cfg := &Config{
		DB: &repository.DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvAsIntOrDefault("DB_PORT", 5432),
			UserName: getEnvOrDefault("DB_USERNAME", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "reservas"),
			SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
		},
	}
	cfg.Server.Port = getEnvOrDefault("PORT", "8080")
	cfg.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	cfg.Logging.Format = getEnvOrDefault("LOG_FORMAT", "text")

	// La variable RESERVAS_ENABLE_TRACING activa las trazas. El único
	// backend soportado es AWS X-Ray; si AWS_XRAY_SDK_DISABLED es true
	// las trazas quedan desactivadas siempre.
	enableKey := os.Getenv("RESERVAS_ENABLE_TRACING")
	if !sdkDisabled() && (strings.ToLower(enableKey) == "true" || enableKey == "1") {
		os.Setenv("AWS_XRAY_SDK_DISABLED", "FALSE")
		cfg.EnableTracing = true
	} else {
		os.Setenv("AWS_XRAY_SDK_DISABLED", "TRUE")
		cfg.EnableTracing = false
	}

	return cfg, nil
}

// LoadBatch carga la configuración del importador, incluido el task token
// de Step Functions cuando el proceso corre como actividad de un flujo
func LoadBatch(taskToken string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	cfg.SFN.TaskToken = taskToken
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Printf("Environment variable %s is not set, using default value", key)
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func sdkDisabled() bool {
	disableKey := os.Getenv("AWS_XRAY_SDK_DISABLED")
	return strings.ToLower(disableKey) == "true"
}
