package service

import (
	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_stores.go -package=mocks

// UserStore is the persistence surface the auth and admin services need.
// Implemented by repository.UserRepository.
type UserStore interface {
	FindUserByUsername(username string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	ListUsers() ([]models.User, error)
	UpdateUserRole(id uint, role string) error
	SetUserActive(id uint, active bool) error
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(hash string) error
}

// QRTokenStore is the persistence surface for QR login tokens.
// Implemented by repository.QRTokenRepository.
type QRTokenStore interface {
	Create(token *models.QRToken) error
	FindByToken(token string) (*models.QRToken, error)
	FindCurrentByUserID(userID uint) (*models.QRToken, error)
	Revoke(userID uint) error
	Activate(userID uint) error
	Regenerate(userID uint, newToken string) (*models.QRToken, error)
	TouchLastUsed(id uint) error
	CountActiveByUserID(userID uint) (int64, error)
	PurgeInactive(userID uint) (int64, error)
}

// ActivityStore records and queries user activity.
// Implemented by repository.ActivityRepository.
type ActivityStore interface {
	CreateActivityLog(userID *uint, action, details, ipAddress, userAgent string) error
	ListByUser(userID uint, filter repository.ActivityFilter) ([]models.ActivityLog, int64, error)
	ListAll(filter repository.ActivityFilter) ([]models.ActivityLog, int64, error)
	CountByUser(userID uint) (int64, error)
	CountByUserAndAction(userID uint, action string) (int64, error)
	DailyCounts(userID uint, days int) ([]repository.DailyCount, error)
	AllByUser(userID uint) ([]models.ActivityLog, error)
}

// HealthStore persists system health snapshots.
// Implemented by repository.HealthRepository.
type HealthStore interface {
	CreateSnapshot(snapshot *models.SystemHealth) error
	LatestSnapshot() (*models.SystemHealth, error)
}
