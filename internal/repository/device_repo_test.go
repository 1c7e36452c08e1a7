package repository

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"smartir_service/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleDescriptor() models.DeviceDescriptor {
	return models.DeviceDescriptor{
		Manufacturer:        "Samsung",
		SupportedModels:     []string{"UE40"},
		SupportedController: models.ControllerBroadlink,
		CommandsEncoding:    models.EncodingBase64,
		Commands:            map[string]string{"power": "JgAGAJYqFQwNBQ=="},
	}
}

func TestDeviceSave_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewDeviceSQLite(db)

	desc := sampleDescriptor()
	descJSON, _ := json.Marshal(desc)

	// ID and created_at are generated; manufacturer comes from the descriptor.
	mock.ExpectExec(regexp.QuoteMeta(upsertDeviceSQL)).
		WithArgs(sqlmock.AnyArg(), "Samsung", "media_player", string(descJSON), 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(ctx(t), models.StoredDevice{
		Category:     "media_player",
		Descriptor:   desc,
		CommandCount: 1,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDeviceSave_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewDeviceSQLite(db)

	mock.ExpectExec("INSERT INTO devices").
		WillReturnError(errors.New("disk full"))

	err = repo.Save(ctx(t), models.StoredDevice{
		ID:         "dev-1",
		Category:   "fan",
		Descriptor: sampleDescriptor(),
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDeviceGet_FoundAndMissing(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewDeviceSQLite(db)

	desc := sampleDescriptor()
	descJSON, _ := json.Marshal(desc)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "manufacturer", "category", "descriptor", "command_count", "created_at"}).
		AddRow("dev-1", "Samsung", "media_player", string(descJSON), 1, created)
	mock.ExpectQuery(regexp.QuoteMeta(selectDeviceSQL)).
		WithArgs("dev-1").
		WillReturnRows(rows)

	got, err := repo.Get(ctx(t), "dev-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != "dev-1" || got.Descriptor.Manufacturer != "Samsung" {
		t.Fatalf("unexpected device: %+v", got)
	}
	if got.Descriptor.Commands["power"] != desc.Commands["power"] {
		t.Fatalf("descriptor round trip lost commands: %+v", got.Descriptor)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, created)
	}

	// Missing -> (nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(selectDeviceSQL)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "manufacturer", "category", "descriptor", "command_count", "created_at"}))

	got, err = repo.Get(ctx(t), "nope")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing device, got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDeviceGet_BadDescriptorJSON(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewDeviceSQLite(db)

	rows := sqlmock.NewRows([]string{"id", "manufacturer", "category", "descriptor", "command_count", "created_at"}).
		AddRow("dev-1", "Samsung", "media_player", "{not json", 1, time.Now().UTC())
	mock.ExpectQuery(regexp.QuoteMeta(selectDeviceSQL)).
		WithArgs("dev-1").
		WillReturnRows(rows)

	if _, err := repo.Get(ctx(t), "dev-1"); err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDeviceList_CategoryFilterAndOrder(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewDeviceSQLite(db)

	descJSON, _ := json.Marshal(sampleDescriptor())
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Unfiltered
	rows := sqlmock.NewRows([]string{"id", "manufacturer", "category", "descriptor", "command_count", "created_at"}).
		AddRow("a", "LG", "climate", string(descJSON), 1, now).
		AddRow("b", "Samsung", "media_player", string(descJSON), 1, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, manufacturer, category, descriptor, command_count, created_at FROM devices ORDER BY manufacturer ASC, id ASC`)).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected rows: %+v", got)
	}

	// With category filter
	rows = sqlmock.NewRows([]string{"id", "manufacturer", "category", "descriptor", "command_count", "created_at"}).
		AddRow("a", "LG", "climate", string(descJSON), 1, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, manufacturer, category, descriptor, command_count, created_at FROM devices WHERE category = ? ORDER BY manufacturer ASC, id ASC`)).
		WithArgs("climate").
		WillReturnRows(rows)

	got, err = repo.List(ctx(t), " climate ")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(got) != 1 || got[0].Category != "climate" {
		t.Fatalf("unexpected filtered rows: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
