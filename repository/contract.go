package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(contract *entity.Contract) error {
	return r.db.Create(contract).Error
}

func (r *ContractRepository) FindByID(id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Contract not found")
		}
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) FindByIDWithRelations(id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.Preload("Versions").Preload("Parties").Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Contract not found")
		}
		return nil, err
	}
	return &contract, nil
}

// ContractFilter narrows List results. Zero values are ignored.
type ContractFilter struct {
	OwnerUserID string
	Status      string
	Search      string
	TemplateID  string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

func (r *ContractRepository) List(filter ContractFilter) ([]entity.Contract, int64, error) {
	query := r.db.Model(&entity.Contract{}).Where("owner_user_id = ?", filter.OwnerUserID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.TemplateID != "" {
		query = query.Where("template_id = ?", filter.TemplateID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	if filter.SortBy == "updatedAt" {
		sortBy = "updated_at"
	} else if filter.SortBy == "title" {
		sortBy = "title"
	}
	order := "desc"
	if filter.SortOrder == "asc" {
		order = "asc"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var contracts []entity.Contract
	err := query.Order(sortBy + " " + order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&contracts).Error
	if err != nil {
		return nil, 0, err
	}

	return contracts, total, nil
}

func (r *ContractRepository) Update(id uuid.UUID, updates map[string]any) (*entity.Contract, error) {
	err := r.db.Model(&entity.Contract{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ContractRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&entity.Contract{}, "id = ?", id).Error
}

// Duplicate copies a contract as a fresh DRAFT owned by ownerUserID. The copy
// carries the latest content as version 1 but none of the parties or history.
func (r *ContractRepository) Duplicate(id uuid.UUID, ownerUserID string) (*entity.Contract, error) {
	source, err := r.FindByIDWithRelations(id)
	if err != nil {
		return nil, err
	}

	clone := &entity.Contract{
		ID:           uuid.New(),
		Title:        source.Title + " (Copy)",
		ContractType: source.ContractType,
		TemplateID:   source.TemplateID,
		OwnerUserID:  ownerUserID,
		Status:       entity.ContractStatusDraft,
		Metadata:     source.Metadata,
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clone).Error; err != nil {
			return err
		}
		if len(source.Versions) > 0 {
			latest := source.Versions[0]
			for _, v := range source.Versions {
				if v.Version > latest.Version {
					latest = v
				}
			}
			version := &entity.ContractVersion{
				ID:         uuid.New(),
				ContractID: clone.ID,
				Version:    1,
				Content:    latest.Content,
				Source:     latest.Source,
				CreatedBy:  ownerUserID,
			}
			if err := tx.Create(version).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return clone, nil
}

// ApplyTransition moves a contract to target and appends the history entry in
// one transaction. The status row is updated with an optimistic lock_version
// guard; losing the race surfaces as Conflict, or InvalidTransition when the
// winner moved the contract to a state from which target is illegal.
func (r *ContractRepository) ApplyTransition(
	contract *entity.Contract,
	target entity.ContractStatus,
	actorID, actorName string,
	reason string,
) (*entity.Contract, error) {
	if !entity.CanTransition(contract.Status, target) {
		return nil, apperror.InvalidTransition(string(contract.Status), string(target))
	}

	now := time.Now().UTC()
	updates := map[string]any{
		"status":       target,
		"lock_version": contract.LockVersion + 1,
		"updated_at":   now,
	}
	if target == entity.ContractStatusSigned {
		updates["signed_at"] = now
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Contract{}).
			Where("id = ? AND lock_version = ?", contract.ID, contract.LockVersion).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the optimistic race; classify against the current row.
			var current entity.Contract
			if err := tx.Where("id = ?", contract.ID).First(&current).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NotFound("Contract not found")
				}
				return err
			}
			if !entity.CanTransition(current.Status, target) {
				return apperror.InvalidTransition(string(current.Status), string(target))
			}
			return apperror.Conflict("Contract was modified concurrently, retry the transition")
		}

		action := entity.ActivityUpdated
		switch target {
		case entity.ContractStatusCancelled:
			action = entity.ActivityCancelled
		case entity.ContractStatusSigned:
			action = entity.ActivitySigned
		case entity.ContractStatusGenerated:
			action = entity.ActivityGenerated
		}

		details, _ := json.Marshal(map[string]any{
			"oldStatus": contract.Status,
			"newStatus": target,
			"reason":    reason,
		})
		logEntry := &entity.ActivityLog{
			ID:         uuid.New(),
			ContractID: contract.ID,
			Action:     action,
			UserID:     actorID,
			UserName:   actorName,
			Details:    details,
		}
		return tx.Create(logEntry).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(contract.ID)
}

// ContractStats aggregates per-status counts for the dashboard.
type ContractStats struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Generated int64 `json:"generated"`
	Signing   int64 `json:"signing"`
	Signed    int64 `json:"signed"`
	Cancelled int64 `json:"cancelled"`
}

func (r *ContractRepository) Stats(ownerUserID string) (*ContractStats, error) {
	var rows []struct {
		Status entity.ContractStatus
		Count  int64
	}
	err := r.db.Model(&entity.Contract{}).
		Select("status, count(*) as count").
		Where("owner_user_id = ?", ownerUserID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &ContractStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case entity.ContractStatusDraft:
			stats.Draft = row.Count
		case entity.ContractStatusGenerated:
			stats.Generated = row.Count
		case entity.ContractStatusSigning:
			stats.Signing = row.Count
		case entity.ContractStatusSigned:
			stats.Signed = row.Count
		case entity.ContractStatusCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}

func (r *ContractRepository) Recent(ownerUserID string, limit int) ([]entity.Contract, error) {
	if limit <= 0 {
		limit = 5
	}
	var contracts []entity.Contract
	err := r.db.Where("owner_user_id = ?", ownerUserID).
		Order("updated_at desc").
		Limit(limit).
		Find(&contracts).Error
	return contracts, err
}

// Pending returns contracts waiting on signatures.
func (r *ContractRepository) Pending(ownerUserID string) ([]entity.Contract, error) {
	var contracts []entity.Contract
	err := r.db.Where("owner_user_id = ? AND status = ?", ownerUserID, entity.ContractStatusSigning).
		Order("updated_at desc").
		Find(&contracts).Error
	return contracts, err
}
