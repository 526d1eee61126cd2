package repository

import (
	"errors"
	"time"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(invitation *entity.Invitation) error {
	return r.db.Create(invitation).Error
}

func (r *InvitationRepository) FindByID(id uuid.UUID) (*entity.Invitation, error) {
	var invitation entity.Invitation
	err := r.db.Where("id = ?", id).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Invitation not found")
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&entity.Invitation{}).Where("id = ?", id).Update("status", status).Error
}

func (r *InvitationRepository) IncrementSentCount(id uuid.UUID) error {
	return r.db.Model(&entity.Invitation{}).Where("id = ?", id).
		UpdateColumn("sent_count", gorm.Expr("sent_count + 1")).Error
}

func (r *InvitationRepository) CreateReminder(reminder *entity.Reminder) error {
	return r.db.Create(reminder).Error
}

func (r *InvitationRepository) FindDueReminders(now time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.Where("sent_at IS NULL AND remind_at <= ?", now).
		Order("remind_at asc").Find(&reminders).Error
	return reminders, err
}

// MarkReminderSent stamps the reminder; the sent_at guard keeps it single-send
// across dispatcher replicas.
func (r *InvitationRepository) MarkReminderSent(id uuid.UUID) (bool, error) {
	res := r.db.Model(&entity.Reminder{}).
		Where("id = ? AND sent_at IS NULL", id).
		Update("sent_at", time.Now().UTC())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
