package controller

import (
	"context"
	"encoding/json"
	"time"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/contractify/contractify-backend/http/controller/dto"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultTokenExpiryMinutes = 7 * 24 * 60

// CreateSignatureToken issues a single-use guest signing token. Only the
// SHA-256 hash is stored; the raw token is returned exactly once.
func (ctrl *Controller) CreateSignatureToken(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateTokenRequestDTO
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
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Signature] Failed to generate token: %v", err)
		utils.JSON500(c, "Failed to generate signing token")
		return
	}

	expiresIn := req.ExpiresInMinutes
	if expiresIn == 0 {
		expiresIn = defaultTokenExpiryMinutes
	}

	token := &entity.SignatureToken{
		ID:         uuid.New(),
		ContractID: contractID,
		PartyID:    partyID,
		TokenHash:  tokenHash,
		ExpiresAt:  time.Now().UTC().Add(time.Duration(expiresIn) * time.Minute),
	}

	if err := ctrl.Repository.SignatureRepo.CreateToken(token); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Signature] Failed to store token for party %s: %v", partyID, err)
		utils.JSON500(c, "Failed to create signing token")
		return
	}

	utils.JSON201(c, gin.H{
		"token":     rawToken,
		"expiresAt": token.ExpiresAt,
		"signUrl":   "https://" + ctrl.Config.EnvConfig.DomainName + "/sign?token=" + rawToken,
	})
}

// ValidateSignatureToken checks a guest token without consuming it. No auth
// required; the token itself is the credential.
func (ctrl *Controller) ValidateSignatureToken(c *gin.Context) {
	rawToken := c.Query("token")
	if rawToken == "" {
		utils.JSON400(c, "Token is required")
		return
	}

	token, err := ctrl.Repository.SignatureRepo.FindActiveToken(utils.HashToken(rawToken))
	if err != nil {
		utils.JSON200(c, gin.H{"valid": false})
		return
	}

	party, err := ctrl.Repository.PartyRepo.FindByID(token.PartyID)
	if err != nil {
		utils.JSON200(c, gin.H{"valid": false})
		return
	}

	utils.JSON200(c, gin.H{
		"valid":      true,
		"contractId": token.ContractID,
		"partyName":  party.Name,
		"partyRole":  party.Role,
		"expiresAt":  token.ExpiresAt,
	})
}

// Sign records a signature by an authenticated party.
func (ctrl *Controller) Sign(c *gin.Context) {
	ctx := c.Request.Context()
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.SignRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	contractID := uuid.MustParse(req.ContractID)
	partyID := uuid.MustParse(req.PartyID)

	contract, err := ctrl.Repository.ContractRepo.FindByID(contractID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	party, err := ctrl.Repository.PartyRepo.FindByID(partyID)
	if err != nil || party.ContractID != contractID {
		utils.JSON404(c, "Party not found")
		return
	}

	// The contract owner signs as host; any other caller must match the
	// party's registered email.
	if contract.OwnerUserID != identity.UserID && party.Email != identity.Email {
		utils.JSON403(c, "You are not a party of this contract")
		return
	}

	signature, err := ctrl.recordSignature(ctx, contract, party, identity.DisplayName(), identity.UserID, req.Evidence)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSON201(c, signature)
}

// SignGuest records a signature via a single-use token. The consume guard
// means two concurrent submissions of the same token yield one signature and
// one conflict.
func (ctrl *Controller) SignGuest(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignGuestRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	token, err := ctrl.Repository.SignatureRepo.FindActiveToken(utils.HashToken(req.Token))
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	if err := ctrl.Repository.SignatureRepo.ConsumeToken(token.ID); err != nil {
		utils.JSONError(c, err)
		return
	}

	contract, err := ctrl.Repository.ContractRepo.FindByID(token.ContractID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	party, err := ctrl.Repository.PartyRepo.FindByID(token.PartyID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	signerName := req.SignerName
	if signerName == "" {
		signerName = party.Name
	}

	signature, err := ctrl.recordSignature(ctx, contract, party, signerName, "guest:"+party.Email, req.Evidence)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSON201(c, signature)
}

// recordSignature stores the signature, marks the party signed and closes the
// contract when every party has signed.
func (ctrl *Controller) recordSignature(ctx context.Context, contract *entity.Contract, party *entity.ContractParty,
	signerName, actorID string, evidence map[string]any) (*entity.Signature, error) {

	if contract.Status != entity.ContractStatusSigning {
		return nil, apperror.Conflict("Contract is not in signing")
	}
	if party.SignatureStatus == entity.PartySignatureSigned {
		return nil, apperror.Conflict("Party has already signed")
	}

	documentHash := ""
	if document, err := ctrl.Repository.DocumentRepo.FindLatestByContractID(contract.ID); err == nil {
		documentHash = document.Hash
	}

	var evidenceJSON []byte
	if evidence != nil {
		evidenceJSON, _ = json.Marshal(evidence)
	}

	signature := &entity.Signature{
		ID:           uuid.New(),
		ContractID:   contract.ID,
		PartyID:      party.ID,
		SignerName:   signerName,
		SignerEmail:  party.Email,
		DocumentHash: documentHash,
		Evidence:     evidenceJSON,
	}

	if err := ctrl.Repository.SignatureRepo.Create(signature); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Signature] Failed to store signature for party %s: %v", party.ID, err)
		return nil, err
	}

	if err := ctrl.Repository.PartyRepo.UpdateSignatureStatus(party.ID, entity.PartySignatureSigned); err != nil {
		return nil, err
	}

	if err := ctrl.Repository.ActivityRepo.Append(contract.ID, entity.ActivitySigned, actorID, signerName,
		map[string]any{"partyId": party.ID, "role": party.Role}); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Signature] Failed to log signature on %s: %v", contract.ID, err)
	}

	allSigned, err := ctrl.Repository.PartyRepo.AllSigned(contract.ID)
	if err != nil {
		return nil, err
	}
	if allSigned {
		if _, err := ctrl.Repository.ContractRepo.ApplyTransition(contract, entity.ContractStatusSigned,
			actorID, signerName, ""); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Signature] Failed to close contract %s: %v", contract.ID, err)
			return nil, err
		}
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[Signature] All parties signed, contract %s is SIGNED", contract.ID)
	}

	return signature, nil
}

func (ctrl *Controller) GetContractSignatures(c *gin.Context) {
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

	signatures, err := ctrl.Repository.SignatureRepo.FindByContractID(contractID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch signatures")
		return
	}

	utils.JSON200(c, signatures)
}

func (ctrl *Controller) UpdateSignatureEvidence(c *gin.Context) {
	identity, ok := ctrl.requireIdentity(c)
	if !ok {
		return
	}
	signatureID, ok := parseUUIDParam(c, "signatureId")
	if !ok {
		return
	}

	var req dto.EvidenceRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	signature, err := ctrl.Repository.SignatureRepo.FindByID(signatureID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if _, err := ctrl.loadOwnedContract(signature.ContractID, identity); err != nil {
		utils.JSONError(c, err)
		return
	}

	blob, _ := json.Marshal(req.Evidence)
	if err := ctrl.Repository.SignatureRepo.UpdateEvidence(signatureID, blob); err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSON200(c, gin.H{"evidence": req.Evidence})
}

// GetSignatureCertificate builds a signed completion certificate for a fully
// signed contract. The HMAC lets the certificate be verified offline.
func (ctrl *Controller) GetSignatureCertificate(c *gin.Context) {
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
	if contract.Status != entity.ContractStatusSigned {
		utils.JSON409(c, "Certificate is only available for signed contracts")
		return
	}

	signatures, err := ctrl.Repository.SignatureRepo.FindByContractID(contractID)
	if err != nil {
		utils.JSON500(c, "Failed to fetch signatures")
		return
	}

	certificate := gin.H{
		"contractId":    contract.ID,
		"contractTitle": contract.Title,
		"signedAt":      contract.SignedAt,
		"signatures":    signatures,
		"issuedAt":      time.Now().UTC(),
	}

	payload, _ := json.Marshal(certificate)
	canonical, err := utils.CanonicalJSON(payload)
	if err != nil {
		utils.JSON500(c, "Failed to build certificate")
		return
	}
	certificate["hmac"] = utils.SignCertificate(ctrl.Config.EnvConfig.Signature.TokenSecret, canonical)

	utils.JSON200(c, certificate)
}

// VerifyCertificate checks a previously issued certificate against its HMAC.
// No auth required; anyone holding the certificate may verify it.
func (ctrl *Controller) VerifyCertificate(c *gin.Context) {
	var req dto.VerifyCertificateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	provided, ok := req.Certificate["hmac"].(string)
	if !ok || provided == "" {
		utils.JSON400(c, "Certificate is missing its hmac")
		return
	}
	delete(req.Certificate, "hmac")

	payload, err := json.Marshal(req.Certificate)
	if err != nil {
		utils.JSON400(c, "Invalid certificate payload")
		return
	}
	canonical, err := utils.CanonicalJSON(payload)
	if err != nil {
		utils.JSON400(c, "Invalid certificate payload")
		return
	}

	expected := utils.SignCertificate(ctrl.Config.EnvConfig.Signature.TokenSecret, canonical)
	utils.JSON200(c, gin.H{"valid": utils.SecureCompare(expected, provided)})
}
