package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartir_service/internal/models"

	"github.com/google/uuid"
)

type DeviceSQLite struct {
	db *sql.DB
}

func NewDeviceSQLite(db *sql.DB) *DeviceSQLite { return &DeviceSQLite{db: db} }

var _ DeviceRepo = (*DeviceSQLite)(nil)

const (
	upsertDeviceSQL = `
		INSERT INTO devices (id, manufacturer, category, descriptor, command_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			manufacturer=excluded.manufacturer,
			category=excluded.category,
			descriptor=excluded.descriptor,
			command_count=excluded.command_count,
			created_at=excluded.created_at
	`

	selectDeviceSQL = `
		SELECT id, manufacturer, category, descriptor, command_count, created_at
		FROM devices WHERE id=?
	`
)

// Save upserts a catalog row. A missing ID or CreatedAt is filled in.
func (r *DeviceSQLite) Save(ctx context.Context, d models.StoredDevice) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	createdUTC := d.CreatedAt
	if createdUTC.IsZero() {
		createdUTC = time.Now().UTC()
	} else {
		createdUTC = createdUTC.UTC()
	}

	descriptorJSON, err := json.Marshal(d.Descriptor)
	if err != nil {
		return fmt.Errorf("marshal descriptor for %q: %w", d.ID, err)
	}

	_, err = r.db.ExecContext(ctx, upsertDeviceSQL,
		d.ID,
		d.Descriptor.Manufacturer,
		d.Category,
		string(descriptorJSON),
		d.CommandCount,
		createdUTC,
	)
	return err
}

// Get fetches a device by ID. Returns (nil, nil) if not found.
func (r *DeviceSQLite) Get(ctx context.Context, id string) (*models.StoredDevice, error) {
	row := r.db.QueryRowContext(ctx, selectDeviceSQL, id)
	d, err := scanDevice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select device %q: %w", id, err)
	}
	return d, nil
}

// List returns catalog rows, optionally filtered by category, ordered by
// manufacturer.
func (r *DeviceSQLite) List(ctx context.Context, category string) ([]models.StoredDevice, error) {
	q := `SELECT id, manufacturer, category, descriptor, command_count, created_at FROM devices`
	var args []any
	if category = strings.TrimSpace(category); category != "" {
		q += " WHERE category = ?"
		args = append(args, category)
	}
	q += " ORDER BY manufacturer ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.StoredDevice, 0, 32)
	for rows.Next() {
		d, err := scanDevice(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanDevice(scan func(dest ...any) error) (*models.StoredDevice, error) {
	var (
		d              models.StoredDevice
		manufacturer   string
		descriptorJSON string
	)
	if err := scan(&d.ID, &manufacturer, &d.Category, &descriptorJSON, &d.CommandCount, &d.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(descriptorJSON), &d.Descriptor); err != nil {
		return nil, fmt.Errorf("unmarshal descriptor for %q: %w", d.ID, err)
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}
