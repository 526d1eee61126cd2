package controller

import (
	"testing"
	"time"

	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
)

func TestJobViewPending(t *testing.T) {
	job := &entity.Job{
		ID:     uuid.New(),
		Kind:   entity.JobKindAIGeneration,
		Status: entity.JobStatusPending,
	}

	view := jobView(job, "/api/ai/jobs/"+job.ID.String())
	if view["status"] != entity.JobStatusPending {
		t.Errorf("status = %v, want PENDING", view["status"])
	}
	if view["pollUrl"] == nil {
		t.Error("pending view missing pollUrl")
	}
	if _, ok := view["result"]; ok {
		t.Error("pending view must not carry a result")
	}
	if _, ok := view["error"]; ok {
		t.Error("pending view must not carry an error")
	}
}

func TestJobViewSucceeded(t *testing.T) {
	now := time.Now().UTC()
	job := &entity.Job{
		ID:          uuid.New(),
		Kind:        entity.JobKindPDFGeneration,
		Status:      entity.JobStatusSucceeded,
		Result:      []byte(`{"documentId":"d1"}`),
		CompletedAt: &now,
	}

	view := jobView(job, "")
	if _, ok := view["result"]; !ok {
		t.Error("succeeded view missing result")
	}
	if _, ok := view["error"]; ok {
		t.Error("succeeded view must not carry an error")
	}
	if _, ok := view["pollUrl"]; ok {
		t.Error("empty poll URL should be omitted")
	}
	if view["completedAt"] == nil {
		t.Error("succeeded view missing completedAt")
	}
}

func TestJobViewFailed(t *testing.T) {
	job := &entity.Job{
		ID:     uuid.New(),
		Kind:   entity.JobKindAIGeneration,
		Status: entity.JobStatusFailed,
		Error:  "job timed out",
	}

	view := jobView(job, "")
	if view["error"] != "job timed out" {
		t.Errorf("error = %v, want the failure reason", view["error"])
	}
	if _, ok := view["result"]; ok {
		t.Error("failed view must not carry a result")
	}
}
