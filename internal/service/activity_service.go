package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/internal/repository"
)

// ActivityService serves activity history, the dashboard summary, and the
// CSV report export.
type ActivityService struct {
	activityStore ActivityStore
	healthStore   HealthStore
}

func NewActivityService(activityStore ActivityStore, healthStore HealthStore) *ActivityService {
	return &ActivityService{
		activityStore: activityStore,
		healthStore:   healthStore,
	}
}

// ActivityPage is one page of activity plus paging metadata.
type ActivityPage struct {
	Logs     []models.ActivityLog `json:"logs"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// ListByUser returns one page of the user's own activity.
func (s *ActivityService) ListByUser(userID uint, filter repository.ActivityFilter) (*ActivityPage, error) {
	logs, total, err := s.activityStore.ListByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	return s.buildPage(logs, total, filter), nil
}

// ListAll returns one page of activity across all users (staff and admin).
func (s *ActivityService) ListAll(filter repository.ActivityFilter) (*ActivityPage, error) {
	logs, total, err := s.activityStore.ListAll(filter)
	if err != nil {
		return nil, err
	}
	return s.buildPage(logs, total, filter), nil
}

func (s *ActivityService) buildPage(logs []models.ActivityLog, total int64, filter repository.ActivityFilter) *ActivityPage {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return &ActivityPage{Logs: logs, Total: total, Page: page, PageSize: pageSize}
}

// ExportCSV streams the user's full activity history as CSV and records the
// export itself as an activity.
func (s *ActivityService) ExportCSV(userID uint, w io.Writer, meta RequestMeta) error {
	logs, err := s.activityStore.AllByUser(userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Date", "Action", "Details", "IP Address"}); err != nil {
		return err
	}

	for _, log := range logs {
		row := []string{
			log.CreatedAt.Format("2006-01-02 15:04:05"),
			log.Action,
			log.Details,
			log.IPAddress,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	_ = s.activityStore.CreateActivityLog(&userID, models.ActionReportGenerated,
		"User exported activity report", meta.IPAddress, meta.UserAgent)

	return nil
}

// DashboardStats is the summary payload behind the dashboard.
type DashboardStats struct {
	TotalActivities  int64                  `json:"total_activities"`
	QRLogins         int64                  `json:"qr_logins"`
	Alerts           int                    `json:"alerts"`
	PerformanceScore int                    `json:"performance_score"`
	RecentActivities []models.ActivityLog   `json:"recent_activities"`
	Trends           []repository.DailyCount `json:"trends"`
}

// Stats assembles the dashboard summary for one user. The performance score
// is derived from the latest health snapshot's critical alerts.
func (s *ActivityService) Stats(userID uint) (*DashboardStats, error) {
	total, err := s.activityStore.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	qrLogins, err := s.activityStore.CountByUserAndAction(userID, models.ActionQRLogin)
	if err != nil {
		return nil, err
	}

	alerts := 0
	snapshot, err := s.healthStore.LatestSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load health snapshot: %w", err)
	}
	if snapshot != nil {
		alerts = snapshot.CriticalAlerts
	}

	score := 100 - alerts*10
	if score < 0 {
		score = 0
	}

	recent, _, err := s.activityStore.ListByUser(userID, repository.ActivityFilter{Page: 1, PageSize: 5})
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []models.ActivityLog{}
	}

	trends, err := s.activityStore.DailyCounts(userID, 7)
	if err != nil {
		return nil, err
	}
	if trends == nil {
		trends = []repository.DailyCount{}
	}

	return &DashboardStats{
		TotalActivities:  total,
		QRLogins:         qrLogins,
		Alerts:           alerts,
		PerformanceScore: score,
		RecentActivities: recent,
		Trends:           trends,
	}, nil
}

// ParseDateFilter converts a yyyy-mm-dd query value into a filter bound.
// Empty or malformed values mean "no bound".
func ParseDateFilter(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
