package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(job *entity.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) FindByID(id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("Job %s not found", id))
		}
		return nil, err
	}
	return &job, nil
}

// MarkRunning advances PENDING -> RUNNING. The status guard makes the advance
// forward-only: a job already RUNNING or terminal is left untouched and the
// caller is told via the bool.
func (r *JobRepository) MarkRunning(id uuid.UUID) (bool, error) {
	now := time.Now().UTC()
	res := r.db.Model(&entity.Job{}).
		Where("id = ? AND status = ?", id, entity.JobStatusPending).
		Updates(map[string]any{
			"status":     entity.JobStatusRunning,
			"started_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkSucceeded advances RUNNING -> SUCCEEDED and attaches the result.
func (r *JobRepository) MarkSucceeded(id uuid.UUID, result []byte) (bool, error) {
	now := time.Now().UTC()
	res := r.db.Model(&entity.Job{}).
		Where("id = ? AND status = ?", id, entity.JobStatusRunning).
		Updates(map[string]any{
			"status":       entity.JobStatusSucceeded,
			"result":       result,
			"completed_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkFailed moves a non-terminal job to FAILED with a structured reason.
// PENDING jobs can fail directly (e.g. dispatch rejected before any worker
// picked them up).
func (r *JobRepository) MarkFailed(id uuid.UUID, reason string) (bool, error) {
	now := time.Now().UTC()
	res := r.db.Model(&entity.Job{}).
		Where("id = ? AND status IN ?", id, []entity.JobStatus{entity.JobStatusPending, entity.JobStatusRunning}).
		Updates(map[string]any{
			"status":       entity.JobStatusFailed,
			"error":        reason,
			"completed_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FailStale fails RUNNING jobs whose work started before the cutoff. Used by
// the consumer watchdog so a crashed worker cannot leave a job RUNNING
// forever. Returns the number of jobs failed.
func (r *JobRepository) FailStale(cutoff time.Time, reason string) (int64, error) {
	now := time.Now().UTC()
	res := r.db.Model(&entity.Job{}).
		Where("status = ? AND started_at < ?", entity.JobStatusRunning, cutoff).
		Updates(map[string]any{
			"status":       entity.JobStatusFailed,
			"error":        reason,
			"completed_at": now,
			"updated_at":   now,
		})
	return res.RowsAffected, res.Error
}
