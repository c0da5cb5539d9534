package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"syscall-optimizer-backend/internal/repository"
	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	activityService *service.ActivityService
}

func NewDashboardHandler(activityService *service.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		activityService: activityService,
	}
}

// Stats returns the dashboard summary for the caller
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.activityService.Stats(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

func activityFilter(c *gin.Context) repository.ActivityFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	return repository.ActivityFilter{
		Action:   c.Query("action"),
		DateFrom: service.ParseDateFilter(c.Query("date_from")),
		DateTo:   service.ParseDateFilter(c.Query("date_to")),
		Page:     page,
		PageSize: pageSize,
	}
}

// Activity returns one page of the caller's own activity history
func (h *DashboardHandler) Activity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, err := h.activityService.ListByUser(userID, activityFilter(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load activity logs")
		return
	}

	utils.SuccessResponse(c, page)
}

// AllActivity returns one page of activity across all users (staff/admin)
func (h *DashboardHandler) AllActivity(c *gin.Context) {
	page, err := h.activityService.ListAll(activityFilter(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load activity logs")
		return
	}

	utils.SuccessResponse(c, page)
}

// ExportActivity streams the caller's activity history as a CSV attachment
func (h *DashboardHandler) ExportActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("activity_report_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.activityService.ExportCSV(userID, c.Writer, requestMeta(c)); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to export report")
		return
	}
}
