package repository

import (
	"errors"
	"time"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/models"

	"gorm.io/gorm"
)

type QRTokenRepository struct {
	db *gorm.DB
}

func NewQRTokenRepo(db *gorm.DB) *QRTokenRepository {
	return &QRTokenRepository{db: db}
}

// Create inserts a new token record. Returns gorm.ErrDuplicatedKey when the
// token string collides with an existing record; callers regenerate.
func (r *QRTokenRepository) Create(token *models.QRToken) error {
	return r.db.Create(token).Error
}

// FindByToken retrieves a token record by its exact token string, active or
// not, with the owning user preloaded.
func (r *QRTokenRepository) FindByToken(token string) (*models.QRToken, error) {
	var record models.QRToken
	err := r.db.Where("token = ?", token).
		Preload("User").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindCurrentByUserID returns the user's newest token record, active or not.
func (r *QRTokenRepository) FindCurrentByUserID(userID uint) (*models.QRToken, error) {
	var record models.QRToken
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Revoke deactivates all of the user's active token records. Revoking a user
// with no active token is a no-op, not an error.
func (r *QRTokenRepository) Revoke(userID uint) error {
	now := time.Now().UTC()
	return r.db.Model(&models.QRToken{}).
		Where("user_id = ? AND active = ?", userID, true).
		Updates(map[string]interface{}{"active": false, "revoked_at": now}).Error
}

// Activate re-enables the user's newest token record.
func (r *QRTokenRepository) Activate(userID uint) error {
	record, err := r.FindCurrentByUserID(userID)
	if err != nil {
		return err
	}
	return r.db.Model(&models.QRToken{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{"active": true, "revoked_at": nil}).Error
}

// Regenerate revokes the user's current token and inserts the replacement in
// a single transaction. A concurrent token login observes either the old
// active record or the new one, never a window with zero active tokens.
func (r *QRTokenRepository) Regenerate(userID uint, newToken string) (*models.QRToken, error) {
	record := &models.QRToken{
		UserID: userID,
		Token:  newToken,
		Active: true,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if err := tx.Model(&models.QRToken{}).
			Where("user_id = ? AND active = ?", userID, true).
			Updates(map[string]interface{}{"active": false, "revoked_at": now}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// TouchLastUsed stamps a successful token login. Tokens stay reusable until
// revoked; this is the only write a token login performs.
func (r *QRTokenRepository) TouchLastUsed(id uint) error {
	now := time.Now().UTC()
	return r.db.Model(&models.QRToken{}).
		Where("id = ?", id).
		Update("last_used_at", now).Error
}

// CountActiveByUserID returns the number of active token records for a user.
func (r *QRTokenRepository) CountActiveByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.QRToken{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error
	return count, err
}

// PurgeInactive hard-deletes a user's inactive token records (admin only).
func (r *QRTokenRepository) PurgeInactive(userID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND active = ?", userID, false).
		Delete(&models.QRToken{})
	return result.RowsAffected, result.Error
}
