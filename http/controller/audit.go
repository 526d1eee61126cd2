package controller

import (
	"encoding/csv"

	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetAuditTrail returns the append-only activity log for a contract,
// optionally filtered by action.
func (ctrl *Controller) GetAuditTrail(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	if _, err := ctrl.loadOwnedContract(contractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	logs, err := ctrl.Repository.ActivityRepo.FindByContractID(contractID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch audit trail")
		return
	}

	if action := c.Query("action"); action != "" {
		filtered := logs[:0]
		for _, entry := range logs {
			if entry.Action == action {
				filtered = append(filtered, entry)
			}
		}
		logs = filtered
	}

	utils.JSON200(c, logs)
}

// ExportAuditTrail streams the activity log as CSV.
func (ctrl *Controller) ExportAuditTrail(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	if _, err := ctrl.loadOwnedContract(contractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	logs, err := ctrl.Repository.ActivityRepo.FindByContractID(contractID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch audit trail")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="audit-`+contractID.String()+`.csv"`)
	c.Status(200)

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write([]string{"timestamp", "action", "user_id", "user_name", "details"})
	for i := range logs {
		entry := &logs[i]
		_ = writer.Write([]string{
			entry.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			entry.Action,
			entry.UserID,
			entry.UserName,
			string(entry.Details),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Audit] Failed to stream CSV for %s: %v", contractID, err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Audit] Exported %d rows for contract %s", len(logs), contractID)
}
