package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobKind enumerates the asynchronous work a job can carry.
type JobKind string

const (
	JobKindAIGeneration  JobKind = "AI_GENERATION"
	JobKindPDFGeneration JobKind = "PDF_GENERATION"
)

// JobStatus is the polling-visible lifecycle of an async job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusSucceeded JobStatus = "SUCCEEDED"
	JobStatusFailed    JobStatus = "FAILED"
)

// jobStatusRank orders statuses so advances are forward-only.
var jobStatusRank = map[JobStatus]int{
	JobStatusPending:   0,
	JobStatusRunning:   1,
	JobStatusSucceeded: 2,
	JobStatusFailed:    2,
}

// CanAdvanceJob reports whether a job may move from -> to. A job never
// re-enters PENDING or RUNNING once terminal, and never moves backwards.
func CanAdvanceJob(from, to JobStatus) bool {
	fromRank, ok := jobStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := jobStatusRank[to]
	if !ok {
		return false
	}
	if from.Terminal() {
		return false
	}
	return toRank > fromRank
}

// Terminal reports whether the status accepts no further advances.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}

// IsValidJobKind reports whether kind names a known job type.
func IsValidJobKind(kind string) bool {
	return JobKind(kind) == JobKindAIGeneration || JobKind(kind) == JobKindPDFGeneration
}

// Job is a tracked asynchronous unit of work. Created PENDING by the API,
// mutated only by the consumer workers, never deleted by the API surface.
type Job struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Kind        JobKind        `json:"kind" gorm:"type:varchar(50);not null;index"`
	Status      JobStatus      `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Input       datatypes.JSON `json:"input,omitempty" gorm:"type:jsonb"`
	Result      datatypes.JSON `json:"result,omitempty" gorm:"type:jsonb"`
	Error       string         `json:"error,omitempty" gorm:"type:text"`
	UserID      string         `json:"user_id" gorm:"type:varchar(100);not null;index"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
