package repository

import (
	"errors"
	"time"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractPartyRepository struct {
	db *gorm.DB
}

func NewContractPartyRepository(db *gorm.DB) *ContractPartyRepository {
	return &ContractPartyRepository{db: db}
}

func (r *ContractPartyRepository) Create(party *entity.ContractParty) error {
	return r.db.Create(party).Error
}

func (r *ContractPartyRepository) FindByID(id uuid.UUID) (*entity.ContractParty, error) {
	var party entity.ContractParty
	err := r.db.Where("id = ?", id).First(&party).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Party not found")
		}
		return nil, err
	}
	return &party, nil
}

func (r *ContractPartyRepository) FindByContractID(contractID uuid.UUID) ([]entity.ContractParty, error) {
	var parties []entity.ContractParty
	err := r.db.Where("contract_id = ?", contractID).Order("signing_order asc").Find(&parties).Error
	return parties, err
}

func (r *ContractPartyRepository) ExistsByEmail(contractID uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.ContractParty{}).
		Where("contract_id = ? AND email = ?", contractID, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ContractPartyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.ContractParty{}, "id = ?", id).Error
}

func (r *ContractPartyRepository) UpdateSignatureStatus(id uuid.UUID, status string) error {
	updates := map[string]any{"signature_status": status}
	if status == entity.PartySignatureSigned {
		updates["signed_at"] = time.Now().UTC()
	}
	return r.db.Model(&entity.ContractParty{}).Where("id = ?", id).Updates(updates).Error
}

// AllSigned reports whether every party of the contract has signed.
func (r *ContractPartyRepository) AllSigned(contractID uuid.UUID) (bool, error) {
	var pending int64
	err := r.db.Model(&entity.ContractParty{}).
		Where("contract_id = ? AND signature_status != ?", contractID, entity.PartySignatureSigned).
		Count(&pending).Error
	if err != nil {
		return false, err
	}
	var total int64
	err = r.db.Model(&entity.ContractParty{}).
		Where("contract_id = ?", contractID).
		Count(&total).Error
	if err != nil {
		return false, err
	}
	return total > 0 && pending == 0, nil
}
