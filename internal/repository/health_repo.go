package repository

import (
	"errors"

	"syscall-optimizer-backend/internal/models"

	"gorm.io/gorm"
)

type HealthRepository struct {
	db *gorm.DB
}

func NewHealthRepo(db *gorm.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// CreateSnapshot persists one system health snapshot
func (r *HealthRepository) CreateSnapshot(snapshot *models.SystemHealth) error {
	return r.db.Create(snapshot).Error
}

// LatestSnapshot returns the most recent snapshot, or nil when none exist yet
func (r *HealthRepository) LatestSnapshot() (*models.SystemHealth, error) {
	var snapshot models.SystemHealth
	err := r.db.Order("created_at DESC").First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}
