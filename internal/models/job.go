package models

import "time"

// Job lifecycle states.
const (
	JobRunning  = "RUNNING"
	JobFinished = "FINISHED"
	JobCanceled = "CANCELED"
)

// DeviceResult is the outcome of converting one device inside a batch job.
type DeviceResult struct {
	Manufacturer string           `json:"manufacturer"`
	Model        string           `json:"model"`
	Stored       bool             `json:"stored"`
	DeviceID     string           `json:"device_id,omitempty"`
	Commands     int              `json:"commands"`
	Failures     []CommandFailure `json:"failures,omitempty"`
	Error        string           `json:"error,omitempty"` // set when the whole device was dropped
}

// JobSnapshot is a point-in-time view of a batch conversion job. Snapshots
// are copies; the running job is never exposed directly.
type JobSnapshot struct {
	JobID      string         `json:"job_id"`
	Status     string         `json:"status"`
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Stored     int            `json:"stored"`
	Rejected   int            `json:"rejected"`
	Results    []DeviceResult `json:"results,omitempty"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at,omitempty"`
}
