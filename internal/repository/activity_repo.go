package repository

import (
	"time"

	"syscall-optimizer-backend/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ActivityFilter narrows activity listings. Zero values mean "no filter".
type ActivityFilter struct {
	Action   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

// DailyCount is one day's activity total for trend charts.
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// CreateActivityLog records a user action. Callers treat failures as
// best-effort and never fail the request over them.
func (r *ActivityRepository) CreateActivityLog(userID *uint, action, details, ipAddress, userAgent string) error {
	log := &models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	return r.db.Create(log).Error
}

// ListByUser returns one page of a user's activity plus the unpaged total.
func (r *ActivityRepository) ListByUser(userID uint, filter ActivityFilter) ([]models.ActivityLog, int64, error) {
	query := r.applyFilter(r.db.Model(&models.ActivityLog{}).Where("user_id = ?", userID), filter)
	return r.page(query, filter)
}

// ListAll returns one page of activity across all users (staff view).
func (r *ActivityRepository) ListAll(filter ActivityFilter) ([]models.ActivityLog, int64, error) {
	query := r.applyFilter(r.db.Model(&models.ActivityLog{}).Preload("User"), filter)
	return r.page(query, filter)
}

func (r *ActivityRepository) applyFilter(query *gorm.DB, filter ActivityFilter) *gorm.DB {
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}
	return query
}

func (r *ActivityRepository) page(query *gorm.DB, filter ActivityFilter) ([]models.ActivityLog, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var logs []models.ActivityLog
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error
	return logs, total, err
}

// CountByUser returns a user's total activity count
func (r *ActivityRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ActivityLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountByUserAndAction returns a user's activity count for one action
func (r *ActivityRepository) CountByUserAndAction(userID uint, action string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ActivityLog{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&count).Error
	return count, err
}

// DailyCounts returns per-day activity totals for the trailing window.
func (r *ActivityRepository) DailyCounts(userID uint, days int) ([]DailyCount, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	var counts []DailyCount
	err := r.db.Model(&models.ActivityLog{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&counts).Error
	return counts, err
}

// AllByUser returns a user's full activity history, newest first (CSV export).
func (r *ActivityRepository) AllByUser(userID uint) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
