package controller

import (
	"encoding/json"
	"strings"

	"github.com/contractify/contractify-backend/http/controller/dto"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetMe returns the caller's profile, provisioning the row from token claims
// on first access.
func (ctrl *Controller) GetMe(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	firstName, lastName := splitName(identity.Name)
	user, err := ctrl.Repository.UserRepo.FindOrCreate(identity.UserID, identity.Email, firstName, lastName)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to load profile for %s: %v", identity.UserID, err)
		utils.JSON500(c, "Failed to load profile")
		return
	}

	utils.JSON200(c, user)
}

func (ctrl *Controller) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if len(updates) == 0 {
		utils.JSON400(c, "No profile fields to update")
		return
	}

	user, err := ctrl.Repository.UserRepo.Update(identity.UserID, updates)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to update profile for %s: %v", identity.UserID, err)
		utils.JSON500(c, "Failed to update profile")
		return
	}

	utils.JSON200(c, user)
}

func (ctrl *Controller) GetPreferences(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	prefs, err := ctrl.Repository.UserRepo.FindPreferences(identity.UserID)
	if err != nil {
		utils.JSON500(c, "Failed to load preferences")
		return
	}

	utils.JSON200(c, prefs)
}

func (ctrl *Controller) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	blob, err := json.Marshal(req.Preferences)
	if err != nil {
		utils.JSON400(c, "Invalid preferences payload")
		return
	}

	if err := ctrl.Repository.UserRepo.UpsertPreferences(identity.UserID, blob); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to save preferences for %s: %v", identity.UserID, err)
		utils.JSON500(c, "Failed to save preferences")
		return
	}

	utils.JSON200(c, gin.H{"preferences": req.Preferences})
}

func (ctrl *Controller) GetSessions(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	sessions, err := ctrl.Repository.UserRepo.FindSessions(identity.UserID)
	if err != nil {
		utils.JSON500(c, "Failed to load sessions")
		return
	}

	utils.JSON200(c, sessions)
}

func (ctrl *Controller) DeleteSession(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.JSON400(c, "Invalid sessionId")
		return
	}

	if err := ctrl.Repository.UserRepo.DeleteSession(identity.UserID, sessionID); err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSON204(c)
}

func splitName(fullName string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(fullName), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
