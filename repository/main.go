package repository

import (
	"github.com/contractify/contractify-backend/infra"
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo       *UserRepository
	ContractRepo   *ContractRepository
	VersionRepo    *ContractVersionRepository
	PartyRepo      *ContractPartyRepository
	ActivityRepo   *ActivityLogRepository
	JobRepo        *JobRepository
	SignatureRepo  *SignatureRepository
	InvitationRepo *InvitationRepository
	DocumentRepo   *DocumentRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = NewRepository(infra.Postgres.DB)
	return repository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:       NewUserRepository(db),
		ContractRepo:   NewContractRepository(db),
		VersionRepo:    NewContractVersionRepository(db),
		PartyRepo:      NewContractPartyRepository(db),
		ActivityRepo:   NewActivityLogRepository(db),
		JobRepo:        NewJobRepository(db),
		SignatureRepo:  NewSignatureRepository(db),
		InvitationRepo: NewInvitationRepository(db),
		DocumentRepo:   NewDocumentRepository(db),
	}
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
