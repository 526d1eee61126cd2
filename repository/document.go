package repository

import (
	"errors"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(document *entity.Document) error {
	return r.db.Create(document).Error
}

func (r *DocumentRepository) FindByID(id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Document not found")
		}
		return nil, err
	}
	return &document, nil
}

// FindByHash looks a document up by its content hash for authenticity checks.
func (r *DocumentRepository) FindByHash(hash string) (*entity.Document, error) {
	var document entity.Document
	err := r.db.Where("hash = ?", hash).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Document not found")
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepository) FindLatestByContractID(contractID uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.Where("contract_id = ?", contractID).Order("created_at desc").First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Document not found")
		}
		return nil, err
	}
	return &document, nil
}
