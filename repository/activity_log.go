package repository

import (
	"encoding/json"

	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Append(contractID uuid.UUID, action, userID, userName string, details map[string]any) error {
	var raw []byte
	if details != nil {
		raw, _ = json.Marshal(details)
	}
	entry := &entity.ActivityLog{
		ID:         uuid.New(),
		ContractID: contractID,
		Action:     action,
		UserID:     userID,
		UserName:   userName,
		Details:    raw,
	}
	return r.db.Create(entry).Error
}

func (r *ActivityLogRepository) FindByContractID(contractID uuid.UUID) ([]entity.ActivityLog, error) {
	var logs []entity.ActivityLog
	err := r.db.Where("contract_id = ?", contractID).Order("timestamp asc").Find(&logs).Error
	return logs, err
}
