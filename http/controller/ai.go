package controller

import (
	"encoding/json"
	"time"

	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/generator"
	"github.com/contractify/contractify-backend/http/controller/dto"
	"github.com/contractify/contractify-backend/infra"
	"github.com/contractify/contractify-backend/infra/produce"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type generationResult struct {
	Content  string             `json:"content"`
	Metadata generator.Metadata `json:"metadata"`
	Cached   bool               `json:"cached"`
}

func (ctrl *Controller) ValidateAIInput(c *gin.Context) {
	var req dto.ValidateInputRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	errs, warnings := generator.ValidateInputs(req.ContractType, req.Inputs)
	utils.JSON200(c, gin.H{
		"valid":    len(errs) == 0,
		"errors":   errs,
		"warnings": warnings,
	})
}

// GenerateContent runs generation synchronously. Identical inputs within the
// cache TTL are served from redis without re-running the generator.
func (ctrl *Controller) GenerateContent(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.AIGenerateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if errs, _ := generator.ValidateInputs(req.ContractType, req.Inputs); len(errs) > 0 {
		utils.JSON400(c, "Invalid generation inputs: "+errs[0])
		return
	}

	cacheKey := "ai:generation:" + generator.CacheKey(req.ContractType, req.Inputs)
	var cached generationResult
	if err := ctrl.Infra.Redis.Get(ctx, cacheKey, &cached); err == nil {
		cached.Cached = true
		utils.JSON200(c, cached)
		return
	} else if err != infra.ErrCacheMiss {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[AI] Cache lookup failed for %s: %v", cacheKey, err)
	}

	content, metadata := generator.Generate(req.ContractType, req.Inputs)
	result := generationResult{Content: content, Metadata: metadata}

	ttl := time.Duration(ctrl.Config.EnvConfig.AICache.TTLSeconds) * time.Second
	if err := ctrl.Infra.Redis.Set(ctx, cacheKey, result, ttl); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[AI] Failed to cache generation %s: %v", cacheKey, err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[AI] Generated %s content for user %s", req.ContractType, identity.UserID)
	utils.JSON200(c, result)
}

// GenerateContentAsync records a PENDING job, dispatches it to the consumer
// and returns 202 with a poll URL. The handler never waits for the worker.
func (ctrl *Controller) GenerateContentAsync(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.AIGenerateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if errs, _ := generator.ValidateInputs(req.ContractType, req.Inputs); len(errs) > 0 {
		utils.JSON400(c, "Invalid generation inputs: "+errs[0])
		return
	}

	if req.ContractID != "" {
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
		if entity.IsTerminal(contract.Status) {
			utils.JSON409(c, "Cannot generate content for "+string(contract.Status)+" contract")
			return
		}
	}

	input, _ := json.Marshal(gin.H{
		"contractId":   req.ContractID,
		"contractType": req.ContractType,
		"templateId":   req.TemplateID,
		"jurisdiction": req.Jurisdiction,
		"inputs":       req.Inputs,
	})

	job := &entity.Job{
		ID:     uuid.New(),
		Kind:   entity.JobKindAIGeneration,
		Status: entity.JobStatusPending,
		Input:  input,
		UserID: identity.UserID,
	}

	if err := ctrl.Repository.JobRepo.Create(job); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[AI] Failed to create job: %v", err)
		utils.JSON500(c, "Failed to create generation job")
		return
	}

	err := ctrl.Infra.Produce.JobService.PublishAIGenerate(ctx, produce.AIGenerateMessage{
		JobID:        job.ID.String(),
		ContractID:   req.ContractID,
		TemplateID:   req.TemplateID,
		ContractType: req.ContractType,
		Jurisdiction: req.Jurisdiction,
		Inputs:       req.Inputs,
		UserID:       identity.UserID,
		UserName:     identity.DisplayName(),
	})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[AI] Failed to publish job %s: %v", job.ID, err)
		if _, markErr := ctrl.Repository.JobRepo.MarkFailed(job.ID, "failed to dispatch job"); markErr != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, markErr, "[AI] Failed to mark job %s failed: %v", job.ID, markErr)
		}
		utils.JSON500(c, "Failed to dispatch generation job")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[AI] Dispatched generation job %s for user %s", job.ID, identity.UserID)
	utils.JSON202(c, jobView(job, "/api/ai/jobs/"+job.ID.String()))
}

func (ctrl *Controller) RegenerateContent(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.AIRegenerateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	content, metadata := generator.Regenerate(req.Feedback)

	if req.ContractID != "" {
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
		if entity.IsTerminal(contract.Status) {
			utils.JSON409(c, "Cannot regenerate content of "+string(contract.Status)+" contract")
			return
		}

		if _, err := ctrl.Repository.VersionRepo.CreateNext(contractID, content, entity.VersionSourceAI, identity.UserID); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[AI] Failed to store regenerated version for %s: %v", contractID, err)
			utils.JSON500(c, "Failed to store regenerated content")
			return
		}

		// Re-generation keeps a GENERATED contract in GENERATED, which still
		// records the transition in its history.
		if contract.Status == entity.ContractStatusDraft || contract.Status == entity.ContractStatusGenerated {
			if _, err := ctrl.Repository.ContractRepo.ApplyTransition(contract, entity.ContractStatusGenerated,
				identity.UserID, identity.DisplayName(), ""); err != nil {
				utils.JSONError(c, err)
				return
			}
		}
	}

	utils.JSON200(c, generationResult{Content: content, Metadata: metadata})
}

// GetAIJob is the polling endpoint. The read never blocks on the worker; it
// reports whatever status the job has at this instant.
func (ctrl *Controller) GetAIJob(c *gin.Context) {
	ctrl.getJob(c, entity.JobKindAIGeneration)
}

func (ctrl *Controller) getJob(c *gin.Context, kind entity.JobKind) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "jobId")
	if !ok {
		return
	}

	job, err := ctrl.Repository.JobRepo.FindByID(jobID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if job.UserID != identity.UserID {
		utils.JSON403(c, "You do not have access to this job")
		return
	}
	if job.Kind != kind {
		utils.JSON404(c, "Job "+jobID.String()+" not found")
		return
	}

	utils.JSON200(c, jobView(job, ""))
}
