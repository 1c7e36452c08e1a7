package models

import "time"

// ConversionEvent is one append-only log entry of the conversion pipeline.
type ConversionEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // DEVICE_STORED | DEVICE_REJECTED | COMMAND_FAILED | JOB_STARTED | JOB_FINISHED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
