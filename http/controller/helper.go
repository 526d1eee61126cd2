package controller

import (
	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireIdentity returns the authenticated caller or writes a 401 and
// reports false.
func (ctrl *Controller) requireIdentity(c *gin.Context) (*utils.Identity, bool) {
	identity, err := utils.GetIdentity(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: identity not found")
		return nil, false
	}
	return identity, true
}

// parseUUIDParam parses a uuid path parameter or writes a 400.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.JSON400(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// loadOwnedContract fetches a contract and enforces ownership. Errors are
// returned, not written, so callers keep their logging context.
func (ctrl *Controller) loadOwnedContract(id uuid.UUID, identity *utils.Identity) (*entity.Contract, error) {
	contract, err := ctrl.Repository.ContractRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if contract.OwnerUserID != identity.UserID {
		return nil, apperror.Forbidden("You do not have access to this contract")
	}
	return contract, nil
}

// jobView is the polling response shape shared by AI and document jobs.
func jobView(job *entity.Job, pollURL string) gin.H {
	view := gin.H{
		"jobId":     job.ID,
		"status":    job.Status,
		"createdAt": job.CreatedAt,
	}
	if pollURL != "" {
		view["pollUrl"] = pollURL
	}
	if job.Status == entity.JobStatusSucceeded && len(job.Result) > 0 {
		view["result"] = job.Result
	}
	if job.Status == entity.JobStatusFailed && job.Error != "" {
		view["error"] = job.Error
	}
	if job.CompletedAt != nil {
		view["completedAt"] = job.CompletedAt
	}
	return view
}
