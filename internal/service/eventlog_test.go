package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartir_service/internal/models"
)

func TestEventLog_InvalidRange(t *testing.T) {
	s := NewEventLogService(&fakeEventRepo{})
	_, err := s.List(context.Background(), LogFilter{
		From: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange, got %v", err)
	}
}

func TestEventLog_TypeNormalized(t *testing.T) {
	repo := &fakeEventRepo{}
	_ = repo.Append(context.Background(), models.ConversionEvent{Type: EventDeviceStored, Description: "a"})
	_ = repo.Append(context.Background(), models.ConversionEvent{Type: EventCommandFailed, Description: "b"})

	s := NewEventLogService(repo)
	out, err := s.List(context.Background(), LogFilter{Type: "  device_stored "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].Description != "a" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestEventLog_ZeroFilterPassesThrough(t *testing.T) {
	repo := &fakeEventRepo{}
	_ = repo.Append(context.Background(), models.ConversionEvent{Type: EventJobStarted})
	_ = repo.Append(context.Background(), models.ConversionEvent{Type: EventJobFinished})

	s := NewEventLogService(repo)
	out, err := s.List(context.Background(), LogFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d events, want 2", len(out))
	}
}
