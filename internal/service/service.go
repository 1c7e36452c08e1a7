package service

import (
	"context"
	"time"

	"smartir_service/internal/models"
	"smartir_service/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Converter exposes the conversion engine: one-shot code conversion and
// device assembly. Per-command failures never abort a device; a device with
// zero successes is dropped.
type Converter interface {
	ConvertPronto(ctx context.Context, code string) (ConvertResult, error)
	ConvertRaw(ctx context.Context, values []int, protocol string) (ConvertResult, error)
	AssembleDevice(ctx context.Context, in DeviceInput) (models.DeviceDescriptor, []models.CommandFailure, error)
	StoreDevice(ctx context.Context, in DeviceInput) (*models.StoredDevice, []models.CommandFailure, error)
}

// Jobs runs batch conversions over many devices with a bounded worker pool.
type Jobs interface {
	StartBatch(devices []DeviceInput) (string, error)
	Snapshot(jobID string) (models.JobSnapshot, bool)
	Cancel(jobID string) bool
	Shutdown()
}

// Validator checks descriptors against the structural schema invariants.
type Validator interface {
	Validate(d models.DeviceDescriptor, requiredKeys []string) models.ValidationResult
	RequiredFor(category string) []string
}

// Catalog exposes read access to the stored device catalog.
type Catalog interface {
	ListDevices(ctx context.Context, category string) ([]models.StoredDevice, error)
	GetDevice(ctx context.Context, id string) (*models.StoredDevice, error)
	BuildIndex(ctx context.Context) ([]models.IndexEntry, error)
}

// EventLog exposes the append-only conversion log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ConversionEvent, error)
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "DEVICE_STORED", "DEVICE_REJECTED", "COMMAND_FAILED", "JOB_STARTED", "JOB_FINISHED"
}

// Config carries the policy knobs the engine itself does not own: the
// protocol-to-frequency table, the minimum viable command count, the batch
// worker limit and the JWT signing key.
type Config struct {
	SigningKey  string
	ProtocolHz  map[string]uint32
	MinCommands int
	JobWorkers  int
}

// Root Service aggregates all sub-services.
type Service struct {
	Converter
	Jobs
	Validator
	Catalog
	EventLog
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	validator := NewValidatorService()
	converter := NewConverterService(repos.Devices, repos.Events, validator, cfg)
	return &Service{
		Converter:     converter,
		Jobs:          NewJobService(converter, repos.Events, cfg.JobWorkers),
		Validator:     validator,
		Catalog:       NewCatalogService(repos.Devices),
		EventLog:      NewEventLogService(repos.Events),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey),
	}
}
