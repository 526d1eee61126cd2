package repository

import (
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractVersionRepository struct {
	db *gorm.DB
}

func NewContractVersionRepository(db *gorm.DB) *ContractVersionRepository {
	return &ContractVersionRepository{db: db}
}

// CreateNext appends content as the next version for the contract. The unique
// (contract_id, version) index rejects a concurrent duplicate append.
func (r *ContractVersionRepository) CreateNext(contractID uuid.UUID, content, source, createdBy string) (*entity.ContractVersion, error) {
	var version *entity.ContractVersion
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var maxVersion int
		err := tx.Model(&entity.ContractVersion{}).
			Where("contract_id = ?", contractID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error
		if err != nil {
			return err
		}

		version = &entity.ContractVersion{
			ID:         uuid.New(),
			ContractID: contractID,
			Version:    maxVersion + 1,
			Content:    content,
			Source:     source,
			CreatedBy:  createdBy,
		}
		return tx.Create(version).Error
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

func (r *ContractVersionRepository) FindByContractID(contractID uuid.UUID) ([]entity.ContractVersion, error) {
	var versions []entity.ContractVersion
	err := r.db.Where("contract_id = ?", contractID).Order("version asc").Find(&versions).Error
	return versions, err
}

func (r *ContractVersionRepository) FindLatest(contractID uuid.UUID) (*entity.ContractVersion, error) {
	var version entity.ContractVersion
	err := r.db.Where("contract_id = ?", contractID).Order("version desc").First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}
