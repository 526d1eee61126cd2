package controller

import (
	"encoding/json"
	"io"

	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/http/controller/dto"
	"github.com/contractify/contractify-backend/infra/produce"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GeneratePDF records a PENDING rendering job and dispatches it to the
// consumer. The rendered bytes land in MinIO; the job result carries the
// document id and download URL.
func (ctrl *Controller) GeneratePDF(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.GeneratePDFRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	contractID, err := uuid.Parse(req.ContractID)
	if err != nil {
		utils.JSON400(c, "Invalid contractId format")
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if contract.Status == entity.ContractStatusDraft {
		utils.JSON409(c, "Cannot render a contract that has no generated content")
		return
	}

	input, _ := json.Marshal(gin.H{
		"contractId":       req.ContractID,
		"includeAuditPage": req.IncludeAuditPage,
	})

	job := &entity.Job{
		ID:     uuid.New(),
		Kind:   entity.JobKindPDFGeneration,
		Status: entity.JobStatusPending,
		Input:  input,
		UserID: identity.UserID,
	}

	if err := ctrl.Repository.JobRepo.Create(job); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to create job: %v", err)
		utils.JSON500(c, "Failed to create rendering job")
		return
	}

	err = ctrl.Infra.Produce.JobService.PublishPDFGenerate(ctx, produce.PDFGenerateMessage{
		JobID:            job.ID.String(),
		ContractID:       req.ContractID,
		IncludeAuditPage: req.IncludeAuditPage,
		UserID:           identity.UserID,
	})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to publish job %s: %v", job.ID, err)
		if _, markErr := ctrl.Repository.JobRepo.MarkFailed(job.ID, "failed to dispatch job"); markErr != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, markErr, "[Document] Failed to mark job %s failed: %v", job.ID, markErr)
		}
		utils.JSON500(c, "Failed to dispatch rendering job")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Document] Dispatched rendering job %s for contract %s", job.ID, contractID)
	utils.JSON202(c, jobView(job, "/api/documents/jobs/"+job.ID.String()))
}

func (ctrl *Controller) GetDocumentJob(c *gin.Context) {
	ctrl.getJob(c, entity.JobKindPDFGeneration)
}

// DownloadDocument streams the stored PDF from MinIO.
func (ctrl *Controller) DownloadDocument(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	documentID, ok := parseUUIDParam(c, "documentId")
	if !ok {
		return
	}

	document, err := ctrl.Repository.DocumentRepo.FindByID(documentID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if _, err := ctrl.loadOwnedContract(document.ContractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	reader, err := ctrl.Infra.Minio.GetDocument(ctx, document.ObjectKey)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to fetch %s from storage: %v", document.ObjectKey, err)
		utils.JSON500(c, "Failed to fetch document")
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="contract-`+document.ContractID.String()+`.pdf"`)
	c.Status(200)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Document] Failed to stream %s: %v", document.ObjectKey, err)
	}
}

// VerifyDocument checks whether a content hash matches a rendered document.
func (ctrl *Controller) VerifyDocument(c *gin.Context) {
	var req dto.VerifyDocumentRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	document, err := ctrl.Repository.DocumentRepo.FindByHash(req.Hash)
	if err != nil {
		utils.JSON200(c, gin.H{"valid": false})
		return
	}

	utils.JSON200(c, gin.H{
		"valid":      true,
		"documentId": document.ID,
		"contractId": document.ContractID,
		"createdAt":  document.CreatedAt,
	})
}
