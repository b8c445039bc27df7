package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB envuelve la conexión sqlx con trazas de X-Ray por consulta.
// Se crea una sola vez en el arranque y se inyecta en los repositorios;
// la consistencia entre peticiones queda delegada a PostgreSQL.
type DB struct {
	*sqlx.DB
}

type DBConfig struct {
	Host     string
	Port     int
	UserName string
	Password string
	DBName   string
	SSLMode  string
}

// NewDB abre el pool de conexiones contra PostgreSQL
func NewDB(cfg *DBConfig) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.UserName,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)

	// Contexto SQL con soporte de X-Ray
	db, err := xray.SQLContext("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create X-Ray SQL context: %w", err)
	}

	conn := sqlx.NewDb(db, "postgres")

	// Configuración del pool de conexiones
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("DB connected successfully", slog.String("host", cfg.Host), slog.String("dbname", cfg.DBName))

	return &DB{conn}, nil
}

// Close cierra la conexión con la base de datos
func (db *DB) Close() error {
	return db.DB.Close()
}

// QueryxContext envuelve sqlx.DB.QueryxContext con una traza de X-Ray
func (db *DB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	ctx, seg := xray.BeginSubsegment(ctx, "DB.Queryx")
	if seg == nil {
		return db.DB.QueryxContext(ctx, query, args...)
	}
	defer seg.Close(nil)

	// La consulta se registra como metadato del segmento
	if err := seg.AddMetadata("query", query); err != nil {
		slog.Warn("failed to add query metadata", slog.Any("error", err))
	}

	rows, err := db.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		seg.Close(err)
		return nil, err
	}

	return rows, nil
}

// QueryRowxContext envuelve sqlx.DB.QueryRowxContext con una traza de X-Ray
func (db *DB) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	ctx, seg := xray.BeginSubsegment(ctx, "DB.QueryRowx")
	if seg == nil {
		return db.DB.QueryRowxContext(ctx, query, args...)
	}
	defer seg.Close(nil)

	if err := seg.AddMetadata("query", query); err != nil {
		slog.Warn("failed to add query metadata", slog.Any("error", err))
	}

	return db.DB.QueryRowxContext(ctx, query, args...)
}

// ExecContext envuelve sqlx.DB.ExecContext con una traza de X-Ray
func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	ctx, seg := xray.BeginSubsegment(ctx, "DB.Exec")
	if seg == nil {
		return db.DB.ExecContext(ctx, query, args...)
	}
	defer seg.Close(nil)

	if err := seg.AddMetadata("query", query); err != nil {
		slog.Warn("failed to add query metadata", slog.Any("error", err))
	}

	result, err := db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		seg.Close(err)
		return nil, err
	}

	return result, nil
}
