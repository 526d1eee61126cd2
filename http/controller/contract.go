package controller

import (
	"encoding/json"
	"strconv"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/http/controller/dto"
	"github.com/contractify/contractify-backend/repository"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (ctrl *Controller) ListContracts(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	page := 1
	pageSize := 20
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("pageSize", "20")); err == nil && v > 0 {
		pageSize = v
	}

	status := c.Query("status")
	if status != "" && !entity.IsValidContractStatus(status) {
		utils.JSON400(c, "Unknown contract status: "+status)
		return
	}

	contracts, total, err := ctrl.Repository.ContractRepo.List(repository.ContractFilter{
		OwnerUserID: identity.UserID,
		Status:      status,
		Search:      c.Query("search"),
		TemplateID:  c.Query("templateId"),
		Page:        page,
		PageSize:    pageSize,
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
	})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to list contracts: %v", err)
		utils.JSON500(c, "Failed to list contracts")
		return
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	utils.JSON200(c, gin.H{
		"data": contracts,
		"pagination": gin.H{
			"page":       page,
			"pageSize":   pageSize,
			"totalPages": totalPages,
			"totalItems": total,
		},
	})
}

func (ctrl *Controller) CreateContract(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateContractRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	var metadata []byte
	if req.Metadata != nil {
		metadata, _ = json.Marshal(req.Metadata)
	}

	contract := &entity.Contract{
		ID:           uuid.New(),
		Title:        req.Title,
		ContractType: req.ContractType,
		TemplateID:   req.TemplateID,
		OwnerUserID:  identity.UserID,
		Status:       entity.ContractStatusDraft,
		Metadata:     metadata,
	}

	if err := ctrl.Repository.ContractRepo.Create(contract); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to create contract: %v", err)
		utils.JSON500(c, "Failed to create contract")
		return
	}

	if err := ctrl.Repository.ActivityRepo.Append(contract.ID, entity.ActivityCreated, identity.UserID, identity.DisplayName(), nil); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to log creation: %v", err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Contract] Created contract %s for user %s", contract.ID, identity.UserID)
	utils.JSON201(c, contract)
}

func (ctrl *Controller) GetContract(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	contract, err := ctrl.Repository.ContractRepo.FindByIDWithRelations(contractID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if contract.OwnerUserID != identity.UserID {
		utils.JSON403(c, "You do not have access to this contract")
		return
	}

	utils.JSON200(c, contract)
}

func (ctrl *Controller) UpdateContract(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	var req dto.UpdateContractRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if len(updates) == 0 {
		utils.JSON200(c, contract)
		return
	}

	updated, err := ctrl.Repository.ContractRepo.Update(contractID, updates)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to update contract %s: %v", contractID, err)
		utils.JSON500(c, "Failed to update contract")
		return
	}

	_ = ctrl.Repository.ActivityRepo.Append(contractID, entity.ActivityUpdated, identity.UserID, identity.DisplayName(),
		map[string]any{"fields": []string{"title"}})

	utils.JSON200(c, updated)
}

func (ctrl *Controller) DeleteContract(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if contract.Status == entity.ContractStatusSigned {
		utils.JSON409(c, "Cannot delete signed contract")
		return
	}

	if err := ctrl.Repository.ContractRepo.SoftDelete(contractID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to delete contract %s: %v", contractID, err)
		utils.JSON500(c, "Failed to delete contract")
		return
	}

	utils.JSON204(c)
}

func (ctrl *Controller) DuplicateContract(c *gin.Context) {
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

	duplicate, err := ctrl.Repository.ContractRepo.Duplicate(contractID, identity.UserID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to duplicate contract %s: %v", contractID, err)
		utils.JSONError(c, err)
		return
	}

	_ = ctrl.Repository.ActivityRepo.Append(duplicate.ID, entity.ActivityCreated, identity.UserID, identity.DisplayName(),
		map[string]any{"duplicatedFrom": contractID})

	utils.JSON201(c, duplicate)
}

func (ctrl *Controller) UpdateContractContent(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	var req dto.UpdateContentRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if entity.IsTerminal(contract.Status) {
		utils.JSON409(c, "Cannot update content of "+string(contract.Status)+" contract")
		return
	}

	source := req.Source
	if source == "" {
		source = entity.VersionSourceUser
	}

	version, err := ctrl.Repository.VersionRepo.CreateNext(contractID, req.Content, source, identity.UserID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to create version for %s: %v", contractID, err)
		utils.JSON500(c, "Failed to update contract content")
		return
	}

	// AI content on a draft promotes the contract through the lifecycle.
	if contract.Status == entity.ContractStatusDraft && source == entity.VersionSourceAI {
		if _, err := ctrl.Repository.ContractRepo.ApplyTransition(contract, entity.ContractStatusGenerated,
			identity.UserID, identity.DisplayName(), ""); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to promote draft %s: %v", contractID, err)
			utils.JSONError(c, err)
			return
		}
	} else {
		_ = ctrl.Repository.ActivityRepo.Append(contractID, entity.ActivityUpdated, identity.UserID, identity.DisplayName(),
			map[string]any{"field": "content"})
	}

	utils.JSON200(c, gin.H{"version": version.Version})
}

func (ctrl *Controller) GetContractVersions(c *gin.Context) {
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

	versions, err := ctrl.Repository.VersionRepo.FindByContractID(contractID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch contract versions")
		return
	}

	utils.JSON200(c, versions)
}

// UpdateContractStatus applies a validated lifecycle transition. Concurrent
// transitions on the same contract are serialized by the optimistic guard in
// the repository; exactly one of two racing requests succeeds.
func (ctrl *Controller) UpdateContractStatus(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if !entity.IsValidContractStatus(req.Status) {
		utils.JSON400(c, "Unknown contract status: "+req.Status)
		return
	}

	target := entity.ContractStatus(req.Status)
	if target == entity.ContractStatusCancelled && req.Reason == "" {
		utils.JSON400(c, "Reason required for cancellation")
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	updated, err := ctrl.Repository.ContractRepo.ApplyTransition(contract, target, identity.UserID, identity.DisplayName(), req.Reason)
	if err != nil {
		if apperror.IsCode(err, "INVALID_TRANSITION") || apperror.IsCode(err, "CONFLICT") {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Contract] Rejected transition %s -> %s on %s: %v",
				contract.Status, target, contractID, err)
		} else {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed transition on %s: %v", contractID, err)
		}
		utils.JSONError(c, err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Contract] Transitioned %s: %s -> %s", contractID, contract.Status, target)
	utils.JSON200(c, updated)
}

// GetContractTransitions lists the legal target states for the contract's
// current status. Terminal states return an empty list.
func (ctrl *Controller) GetContractTransitions(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSON200(c, gin.H{
		"currentStatus":      contract.Status,
		"allowedTransitions": entity.ValidTransitions(contract.Status),
	})
}

func (ctrl *Controller) GetContractHistory(c *gin.Context) {
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
		utils.JSON500(c, "Failed to fetch contract history")
		return
	}

	utils.JSON200(c, logs)
}

func (ctrl *Controller) GetContractStats(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	stats, err := ctrl.Repository.ContractRepo.Stats(identity.UserID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch contract stats")
		return
	}

	utils.JSON200(c, stats)
}

func (ctrl *Controller) GetRecentContracts(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	contracts, err := ctrl.Repository.ContractRepo.Recent(identity.UserID, 5)
	if err != nil {
		utils.JSON500(c, "Failed to fetch recent contracts")
		return
	}

	utils.JSON200(c, contracts)
}

func (ctrl *Controller) GetPendingContracts(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	contracts, err := ctrl.Repository.ContractRepo.Pending(identity.UserID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch pending contracts")
		return
	}

	utils.JSON200(c, contracts)
}

func (ctrl *Controller) GetContractParties(c *gin.Context) {
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

	parties, err := ctrl.Repository.PartyRepo.FindByContractID(contractID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch contract parties")
		return
	}

	utils.JSON200(c, parties)
}

func (ctrl *Controller) AddContractParty(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	var req dto.AddPartyRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	contract, err := ctrl.loadOwnedContract(contractID, identity)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if entity.IsTerminal(contract.Status) {
		utils.JSON409(c, "Cannot add parties to "+string(contract.Status)+" contract")
		return
	}

	exists, err := ctrl.Repository.PartyRepo.ExistsByEmail(contractID, req.Email)
	if err != nil {
		utils.JSON500(c, "Failed to check party email")
		return
	}
	if exists {
		utils.JSON409(c, "A party with this email already exists on the contract")
		return
	}

	signingOrder := req.SigningOrder
	if signingOrder == 0 {
		signingOrder = 1
	}

	party := &entity.ContractParty{
		ID:              uuid.New(),
		ContractID:      contractID,
		Role:            req.Role,
		Name:            req.Name,
		Email:           req.Email,
		SignatureStatus: entity.PartySignaturePending,
		SigningOrder:    signingOrder,
	}

	if err := ctrl.Repository.PartyRepo.Create(party); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contract] Failed to add party to %s: %v", contractID, err)
		utils.JSON500(c, "Failed to add contract party")
		return
	}

	utils.JSON201(c, party)
}

func (ctrl *Controller) RemoveContractParty(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}
	partyID, ok := parseUUIDParam(c, "partyId")
	if !ok {
		return
	}

	if _, err := ctrl.loadOwnedContract(contractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	party, err := ctrl.Repository.PartyRepo.FindByID(partyID)
	if err != nil || party.ContractID != contractID {
		utils.JSON404(c, "Party not found")
		return
	}

	if party.SignatureStatus == entity.PartySignatureSigned {
		utils.JSON409(c, "Cannot remove a party that has already signed")
		return
	}

	if err := ctrl.Repository.PartyRepo.Delete(partyID); err != nil {
		utils.JSON500(c, "Failed to remove contract party")
		return
	}

	utils.JSON204(c)
}

// GetPublicContract serves the read-only view used by guest signers. Auth is
// optional; an anonymous caller sees only non-sensitive fields.
func (ctrl *Controller) GetPublicContract(c *gin.Context) {
	contractID, ok := parseUUIDParam(c, "contractId")
	if !ok {
		return
	}

	contract, err := ctrl.Repository.ContractRepo.FindByIDWithRelations(contractID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	var content string
	if latest, err := ctrl.Repository.VersionRepo.FindLatest(contractID); err == nil {
		content = latest.Content
	}

	view := gin.H{
		"id":           contract.ID,
		"title":        contract.Title,
		"status":       contract.Status,
		"contractType": contract.ContractType,
		"content":      content,
	}

	// Owners get the party list as well.
	if identity := utils.GetOptionalIdentity(c); identity != nil && identity.UserID == contract.OwnerUserID {
		view["parties"] = contract.Parties
	}

	utils.JSON200(c, view)
}
