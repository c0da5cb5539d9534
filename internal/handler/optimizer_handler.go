package handler

import (
	"net/http"

	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OptimizerHandler struct {
	optimizerService *service.OptimizerService
}

func NewOptimizerHandler(optimizerService *service.OptimizerService) *OptimizerHandler {
	return &OptimizerHandler{
		optimizerService: optimizerService,
	}
}

// Performance returns the full syscall performance table
func (h *OptimizerHandler) Performance(c *gin.Context) {
	utils.SuccessResponse(c, h.optimizerService.PerformanceData())
}

// Recommendations returns optimization suggestions for flagged syscalls.
// External completion failures never surface here; the rule table covers
// them.
func (h *OptimizerHandler) Recommendations(c *gin.Context) {
	recommendations := h.optimizerService.Recommendations(c.Request.Context())

	items := make([]gin.H, 0, len(recommendations))
	for _, rec := range recommendations {
		items = append(items, gin.H{
			"syscall":             rec.Syscall,
			"category":            rec.Category,
			"current_performance": rec.CurrentPerformance,
			"recommendation_type": rec.RecommendationType,
			"recommendation":      rec.SuggestedAction,
			"resource_impact":     rec.ResourceImpact,
		})
	}

	utils.SuccessResponse(c, items)
}

// Categories returns syscall names grouped by category
func (h *OptimizerHandler) Categories(c *gin.Context) {
	utils.SuccessResponse(c, h.optimizerService.Categories())
}

// SyscallDetails returns the record for a single syscall
func (h *OptimizerHandler) SyscallDetails(c *gin.Context) {
	name := c.Param("name")

	record, ok := h.optimizerService.SyscallDetails(name)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "System call not found")
		return
	}

	utils.SuccessResponse(c, record)
}

type SimulateRequest struct {
	Count int `json:"count" binding:"omitempty,min=1,max=1000"`
}

// Simulate injects a burst of synthetic samples for demonstration
func (h *OptimizerHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	count := req.Count
	if count == 0 {
		count = 30
	}

	recorded := h.optimizerService.Ingest(count)

	utils.SuccessResponse(c, gin.H{"recorded": recorded})
}
