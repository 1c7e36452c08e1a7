package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smartir_service/internal/models"
	"smartir_service/internal/repository"

	"github.com/google/uuid"
)

var errEmptyBatch = errors.New("batch contains no devices")

// JobService converts catalogs of devices in the background. Each job fans
// its devices out over a bounded worker pool; conversions share no state, so
// the pool size is purely a resource limit. Cancellation is cooperative:
// queued items are abandoned, in-flight conversions finish.
type JobService struct {
	converter Converter
	eventRepo repository.EventRepo
	workers   int

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup

	mu   sync.Mutex
	jobs map[string]*batchJob
}

type batchJob struct {
	mu       sync.Mutex
	snapshot models.JobSnapshot
	cancel   context.CancelFunc
}

func NewJobService(converter Converter, eventRepo repository.EventRepo, workers int) *JobService {
	if workers <= 0 {
		workers = defaultJobWorkers
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &JobService{
		converter: converter,
		eventRepo: eventRepo,
		workers:   workers,
		baseCtx:   ctx,
		stop:      cancel,
		jobs:      make(map[string]*batchJob),
	}
}

var _ Jobs = (*JobService)(nil)

// StartBatch queues a batch job and returns its ID immediately.
func (s *JobService) StartBatch(devices []DeviceInput) (string, error) {
	if len(devices) == 0 {
		return "", errEmptyBatch
	}

	jobID := uuid.NewString()
	ctx, cancel := context.WithCancel(s.baseCtx)
	job := &batchJob{
		cancel: cancel,
		snapshot: models.JobSnapshot{
			JobID:     jobID,
			Status:    models.JobRunning,
			Total:     len(devices),
			StartedAt: time.Now().UTC(),
		},
	}

	s.mu.Lock()
	s.jobs[jobID] = job
	s.mu.Unlock()

	s.appendJobEvent(EventJobStarted, jobID, fmt.Sprintf("batch of %d devices queued", len(devices)))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.run(ctx, job, devices)
	}()

	return jobID, nil
}

// Snapshot returns a copy of the job's current state.
func (s *JobService) Snapshot(jobID string) (models.JobSnapshot, bool) {
	s.mu.Lock()
	job, ok := s.jobs[jobID]
	s.mu.Unlock()
	if !ok {
		return models.JobSnapshot{}, false
	}

	job.mu.Lock()
	defer job.mu.Unlock()
	snap := job.snapshot
	snap.Results = append([]models.DeviceResult(nil), job.snapshot.Results...)
	return snap, true
}

// Cancel abandons the job's queued devices. Returns false for unknown jobs.
func (s *JobService) Cancel(jobID string) bool {
	s.mu.Lock()
	job, ok := s.jobs[jobID]
	s.mu.Unlock()
	if !ok {
		return false
	}
	job.cancel()
	return true
}

// Shutdown cancels every running job and waits for the workers to drain.
func (s *JobService) Shutdown() {
	s.stop()
	s.wg.Wait()
}

func (s *JobService) run(ctx context.Context, job *batchJob, devices []DeviceInput) {
	queue := make(chan DeviceInput)

	var workers sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for in := range queue {
				job.record(s.convertOne(ctx, in))
			}
		}()
	}

	canceled := false
feed:
	for _, in := range devices {
		select {
		case <-ctx.Done():
			canceled = true
			break feed
		case queue <- in:
		}
	}
	close(queue)
	workers.Wait()

	job.mu.Lock()
	if canceled {
		job.snapshot.Status = models.JobCanceled
	} else {
		job.snapshot.Status = models.JobFinished
	}
	job.snapshot.FinishedAt = time.Now().UTC()
	status, stored, rejected := job.snapshot.Status, job.snapshot.Stored, job.snapshot.Rejected
	jobID := job.snapshot.JobID
	job.mu.Unlock()

	s.appendJobEvent(EventJobFinished, jobID, fmt.Sprintf("batch %s: %d stored, %d rejected", status, stored, rejected))
}

func (s *JobService) convertOne(ctx context.Context, in DeviceInput) models.DeviceResult {
	result := models.DeviceResult{Manufacturer: in.Manufacturer, Model: in.Model}
	stored, failures, err := s.converter.StoreDevice(ctx, in)
	result.Failures = failures
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Stored = true
	result.DeviceID = stored.ID
	result.Commands = stored.CommandCount
	return result
}

func (j *batchJob) record(r models.DeviceResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.snapshot.Completed++
	if r.Stored {
		j.snapshot.Stored++
	} else {
		j.snapshot.Rejected++
	}
	j.snapshot.Results = append(j.snapshot.Results, r)
}

// Job log writes use a fresh context so a canceled job can still record its
// outcome.
func (s *JobService) appendJobEvent(typ, jobID, description string) {
	_ = s.eventRepo.Append(context.Background(), models.ConversionEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    map[string]any{"job_id": jobID},
	})
}
