package repository

import (
	"errors"
	"time"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SignatureRepository struct {
	db *gorm.DB
}

func NewSignatureRepository(db *gorm.DB) *SignatureRepository {
	return &SignatureRepository{db: db}
}

func (r *SignatureRepository) Create(signature *entity.Signature) error {
	return r.db.Create(signature).Error
}

func (r *SignatureRepository) FindByID(id uuid.UUID) (*entity.Signature, error) {
	var signature entity.Signature
	err := r.db.Where("id = ?", id).First(&signature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Signature not found")
		}
		return nil, err
	}
	return &signature, nil
}

func (r *SignatureRepository) FindByContractID(contractID uuid.UUID) ([]entity.Signature, error) {
	var signatures []entity.Signature
	err := r.db.Where("contract_id = ?", contractID).Order("signed_at asc").Find(&signatures).Error
	return signatures, err
}

func (r *SignatureRepository) UpdateEvidence(id uuid.UUID, evidence []byte) error {
	res := r.db.Model(&entity.Signature{}).Where("id = ?", id).Update("evidence", evidence)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Signature not found")
	}
	return nil
}

func (r *SignatureRepository) CreateToken(token *entity.SignatureToken) error {
	return r.db.Create(token).Error
}

// FindActiveToken resolves a token hash to its unexpired, unused record.
func (r *SignatureRepository) FindActiveToken(tokenHash string) (*entity.SignatureToken, error) {
	var token entity.SignatureToken
	err := r.db.Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, time.Now().UTC()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Validation("Invalid or expired token")
		}
		return nil, err
	}
	return &token, nil
}

// ConsumeToken marks a token used; the used_at guard makes it single-use even
// under concurrent guest signing.
func (r *SignatureRepository) ConsumeToken(id uuid.UUID) error {
	res := r.db.Model(&entity.SignatureToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now().UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.Conflict("Token has already been used")
	}
	return nil
}
