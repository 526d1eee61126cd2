package repository

import (
	"errors"

	"github.com/contractify/contractify-backend/apperror"
	"github.com/contractify/contractify-backend/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindOrCreate provisions a user row from token claims on first access.
func (r *UserRepository) FindOrCreate(id, email, firstName, lastName string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = entity.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      "USER",
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(id string, updates map[string]any) (*entity.User, error) {
	err := r.db.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// FindPreferences returns the stored preferences blob, or an empty record
// when the user has never saved any.
func (r *UserRepository) FindPreferences(userID string) (*entity.UserPreferences, error) {
	var prefs entity.UserPreferences
	err := r.db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.UserPreferences{UserID: userID}, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// UpsertPreferences merges the given preferences blob for the user.
func (r *UserRepository) UpsertPreferences(userID string, preferences []byte) error {
	prefs := &entity.UserPreferences{
		UserID:      userID,
		Preferences: preferences,
	}
	return r.db.Save(prefs).Error
}

func (r *UserRepository) FindSessions(userID string) ([]entity.UserSession, error) {
	var sessions []entity.UserSession
	err := r.db.Where("user_id = ?", userID).Order("last_activity_at desc").Find(&sessions).Error
	return sessions, err
}

func (r *UserRepository) DeleteSession(userID, sessionID string) error {
	res := r.db.Delete(&entity.UserSession{}, "id = ? AND user_id = ?", sessionID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Session not found")
	}
	return nil
}

func (r *UserRepository) TouchSession(session *entity.UserSession) error {
	return r.db.Save(session).Error
}
