package worker

import (
	"fmt"
	"testing"

	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/generator"
	"github.com/google/uuid"
)

func TestContractAcceptsContent(t *testing.T) {
	tests := []struct {
		status  entity.ContractStatus
		wantErr bool
	}{
		{entity.ContractStatusDraft, false},
		{entity.ContractStatusGenerated, false},
		{entity.ContractStatusSigning, false},
		{entity.ContractStatusSigned, true},
		{entity.ContractStatusCancelled, true},
	}

	for _, tt := range tests {
		contract := &entity.Contract{ID: uuid.New(), Status: tt.status}
		err := contractAcceptsContent(contract)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected an error for a terminal contract", tt.status)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.status, err)
		}
		if tt.wantErr && !isPermanent(err) {
			t.Errorf("%s: terminal-contract error should not be retried", tt.status)
		}
	}
}

func TestPermanentErrorClassification(t *testing.T) {
	perm := permanentf("contract %s is SIGNED", "abc")
	if !isPermanent(perm) {
		t.Error("permanentf error not classified as permanent")
	}
	if perm.Error() != "contract abc is SIGNED" {
		t.Errorf("message = %q", perm.Error())
	}

	if isPermanent(fmt.Errorf("connection refused")) {
		t.Error("plain error classified as permanent")
	}
	if isPermanent(nil) {
		t.Error("nil classified as permanent")
	}

	wrapped := fmt.Errorf("attempt failed: %w", perm)
	if !isPermanent(wrapped) {
		t.Error("wrapping lost the permanent classification")
	}
}

func TestAIGenerationResultReusesStoredVersion(t *testing.T) {
	contractID := uuid.New()
	gen := &aiGeneration{
		content:   "contenido",
		metadata:  generator.Metadata{Model: "mock-gpt-4", ConfidenceScore: 0.95},
		generated: true,
		version: &entity.ContractVersion{
			ID:         uuid.New(),
			ContractID: contractID,
			Version:    2,
		},
	}

	result := gen.result()
	if result["version"] != 2 {
		t.Errorf("version = %v, want the version stored on the first attempt", result["version"])
	}
	if result["contractId"] != contractID {
		t.Errorf("contractId = %v, want %v", result["contractId"], contractID)
	}
	if result["content"] != "contenido" {
		t.Errorf("content = %v", result["content"])
	}
}

func TestAIGenerationResultWithoutContract(t *testing.T) {
	gen := &aiGeneration{content: "contenido", generated: true, cached: true}
	result := gen.result()
	if _, ok := result["version"]; ok {
		t.Error("detached generation must not report a version")
	}
	if result["cached"] != true {
		t.Error("cached flag lost")
	}
}
