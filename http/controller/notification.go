package controller

import (
	"time"

	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/http/controller/dto"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendInvitation issues a signing token for the party and publishes the
// invitation email with the signing link.
func (ctrl *Controller) SendInvitation(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.SendInvitationRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	contractID := uuid.MustParse(req.ContractID)
	partyID := uuid.MustParse(req.PartyID)

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if contract.Status != entity.ContractStatusSigning {
		utils.JSON409(c, "Contract is not in signing")
		return
	}

	party, err := ctrl.Repository.PartyRepo.FindByID(partyID)
	if err != nil || party.ContractID != contractID {
		utils.JSON404(c, "Party not found")
		return
	}
	if party.SignatureStatus == entity.PartySignatureSigned {
		utils.JSON409(c, "Party has already signed")
		return
	}

	rawToken, tokenHash, err := utils.NewSignatureToken()
	if err != nil {
		utils.JSON500(c, "Failed to generate signing token")
		return
	}

	token := &entity.SignatureToken{
		ID:         uuid.New(),
		ContractID: contractID,
		PartyID:    partyID,
		TokenHash:  tokenHash,
		ExpiresAt:  time.Now().UTC().Add(defaultTokenExpiryMinutes * time.Minute),
	}
	if err := ctrl.Repository.SignatureRepo.CreateToken(token); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to store token for party %s: %v", partyID, err)
		utils.JSON500(c, "Failed to create signing token")
		return
	}

	invitation := &entity.Invitation{
		ID:             uuid.New(),
		ContractID:     contractID,
		PartyID:        partyID,
		RecipientEmail: party.Email,
		RecipientName:  party.Name,
		Message:        req.Message,
		Status:         entity.InvitationStatusSent,
		SentCount:      1,
	}
	if err := ctrl.Repository.InvitationRepo.Create(invitation); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to store invitation: %v", err)
		utils.JSON500(c, "Failed to record invitation")
		return
	}

	signURL := "https://" + ctrl.Config.EnvConfig.DomainName + "/sign?token=" + rawToken
	content := req.Message
	if content == "" {
		content = "You have been invited to sign \"" + contract.Title + "\"."
	}

	if err := ctrl.Infra.Produce.EmailService.SendInvitation(ctx, party.Email, party.Name, content, signURL); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to publish invitation email: %v", err)
		utils.JSON500(c, "Failed to send invitation")
		return
	}

	if err := ctrl.Repository.PartyRepo.UpdateSignatureStatus(partyID, entity.PartySignatureInvited); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to mark party %s invited: %v", partyID, err)
	}

	_ = ctrl.Repository.ActivityRepo.Append(contractID, entity.ActivitySent, identity.UserID, identity.DisplayName(),
		map[string]any{"partyId": partyID, "email": party.Email})

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Notification] Invitation sent for contract %s to %s", contractID, party.Email)
	utils.JSON201(c, invitation)
}

func (ctrl *Controller) CancelInvitation(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	invitationID, ok := parseUUIDParam(c, "invitationId")
	if !ok {
		return
	}

	invitation, err := ctrl.Repository.InvitationRepo.FindByID(invitationID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if _, err := ctrl.loadOwnedContract(invitation.ContractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	if err := ctrl.Repository.InvitationRepo.UpdateStatus(invitationID, entity.InvitationStatusCancelled); err != nil {
		utils.JSON500(c, "Failed to cancel invitation")
		return
	}

	utils.JSON204(c)
}

// ResendInvitation re-publishes the invitation email with a fresh token.
func (ctrl *Controller) ResendInvitation(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	invitationID, ok := parseUUIDParam(c, "invitationId")
	if !ok {
		return
	}

	invitation, err := ctrl.Repository.InvitationRepo.FindByID(invitationID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	contract, err := ctrl.loadOwnedContract(invitation.ContractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if invitation.Status == entity.InvitationStatusCancelled {
		utils.JSON409(c, "Invitation has been cancelled")
		return
	}

	rawToken, tokenHash, err := utils.NewSignatureToken()
	if err != nil {
		utils.JSON500(c, "Failed to generate signing token")
		return
	}
	token := &entity.SignatureToken{
		ID:         uuid.New(),
		ContractID: invitation.ContractID,
		PartyID:    invitation.PartyID,
		TokenHash:  tokenHash,
		ExpiresAt:  time.Now().UTC().Add(defaultTokenExpiryMinutes * time.Minute),
	}
	if err := ctrl.Repository.SignatureRepo.CreateToken(token); err != nil {
		utils.JSON500(c, "Failed to create signing token")
		return
	}

	signURL := "https://" + ctrl.Config.EnvConfig.DomainName + "/sign?token=" + rawToken
	content := "Reminder: you have been invited to sign \"" + contract.Title + "\"."

	if err := ctrl.Infra.Produce.EmailService.SendInvitation(ctx, invitation.RecipientEmail, invitation.RecipientName, content, signURL); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to re-publish invitation email: %v", err)
		utils.JSON500(c, "Failed to resend invitation")
		return
	}

	if err := ctrl.Repository.InvitationRepo.IncrementSentCount(invitationID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to bump sent count for %s: %v", invitationID, err)
	}

	utils.JSON200(c, gin.H{"status": "resent"})
}

// ScheduleReminder records a reminder to nudge pending signers.
func (ctrl *Controller) ScheduleReminder(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ScheduleReminderRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		utils.JSON400(c, "remindAt must be an RFC 3339 timestamp")
		return
	}

	contractID := uuid.MustParse(req.ContractID)
	if _, err := ctrl.loadOwnedContract(contractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	reminder := &entity.Reminder{
		ID:         uuid.New(),
		ContractID: contractID,
		RemindAt:   remindAt.UTC(),
		Message:    req.Message,
		CreatedBy:  identity.UserID,
	}

	if err := ctrl.Repository.InvitationRepo.CreateReminder(reminder); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Notification] Failed to store reminder: %v", err)
		utils.JSON500(c, "Failed to schedule reminder")
		return
	}

	utils.JSON201(c, reminder)
}
