package handler

import (
	"net/http"
	"strconv"

	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type QRTokenHandler struct {
	qrTokenService *service.QRTokenService
}

func NewQRTokenHandler(qrTokenService *service.QRTokenService) *QRTokenHandler {
	return &QRTokenHandler{
		qrTokenService: qrTokenService,
	}
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return 0, false
	}
	return userID.(uint), true
}

// Current returns the caller's token record including the rendered image
// when available.
func (h *QRTokenHandler) Current(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	response, err := h.qrTokenService.Current(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "No QR token found")
		return
	}

	utils.SuccessResponse(c, response)
}

// Image streams the caller's QR code as a PNG.
func (h *QRTokenHandler) Image(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	png, err := h.qrTokenService.CurrentPNG(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "QR image unavailable")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Regenerate revokes the current token and issues a fresh one.
func (h *QRTokenHandler) Regenerate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := h.qrTokenService.Regenerate(userID, requestMeta(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to regenerate QR token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token":      record.Token,
		"created_at": record.CreatedAt,
	})
}

// Revoke deactivates the current token. Already-revoked is still a success.
func (h *QRTokenHandler) Revoke(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.qrTokenService.Revoke(userID, requestMeta(c)); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to revoke QR token")
		return
	}

	utils.MessageResponse(c, "QR token revoked")
}

// Activate re-enables the newest token record.
func (h *QRTokenHandler) Activate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.qrTokenService.Activate(userID, requestMeta(c)); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "No QR token found")
		return
	}

	utils.MessageResponse(c, "QR token activated")
}

// Purge hard-deletes a user's inactive token records (admin only).
func (h *QRTokenHandler) Purge(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	purged, err := h.qrTokenService.PurgeInactive(uint(targetID), adminID, requestMeta(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to purge QR tokens")
		return
	}

	utils.SuccessResponse(c, gin.H{"purged": purged})
}
