package repository

import (
	"context"
	"database/sql"
	"time"

	"smartir_service/internal/models"
	"smartir_service/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// DeviceRepo is the persisted device catalog.
type DeviceRepo interface {
	Save(ctx context.Context, d models.StoredDevice) error
	Get(ctx context.Context, id string) (*models.StoredDevice, error)
	List(ctx context.Context, category string) ([]models.StoredDevice, error)
}

// EventRepo is the append-only conversion log with filtering access.
type EventRepo interface {
	Append(ctx context.Context, e models.ConversionEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ConversionEvent, error)
}

type Repository struct {
	Devices DeviceRepo
	Events  EventRepo
	Auth    Authorization
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Devices: NewDeviceSQLite(sqlDB),
		Events:  NewEventSQLite(sqlDB),
		Auth:    NewUserRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
