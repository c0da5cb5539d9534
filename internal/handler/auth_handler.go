package handler

import (
	"net/http"
	"time"

	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff user"`
}

// QRLoginRequest accepts either the raw scanner payload (username|token) or
// a bare token string.
type QRLoginRequest struct {
	QRData string `json:"qr_data"`
	Token  string `json:"token"`
}

// genericAuthFailure is the single message every credential failure maps to,
// so neither usernames nor tokens can be enumerated.
const genericAuthFailure = "invalid credentials"

func requestMeta(c *gin.Context) service.RequestMeta {
	return service.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
}

func setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		"refresh_token",
		token,
		int(7*24*time.Hour.Seconds()),
		"/",
		"",
		false, // secure: enable behind HTTPS
		true,  // httpOnly
	)
}

// Login handles password authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Username, req.Password, requestMeta(c))
	if err != nil {
		if service.IsAuthError(err) {
			utils.ErrorResponse(c, http.StatusUnauthorized, genericAuthFailure)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// QRLogin handles token authentication from a scanned QR code
func (h *AuthHandler) QRLogin(c *gin.Context) {
	var req QRLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	qrData := req.QRData
	if qrData == "" {
		qrData = req.Token
	}
	if qrData == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "QR data is required")
		return
	}

	response, err := h.authService.LoginWithToken(qrData, requestMeta(c))
	if err != nil {
		if service.IsAuthError(err) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or revoked token")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Register(req.Username, req.Password, req.Role, requestMeta(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Refresh generates a new access token from the refresh cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired session")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(refreshToken, nil, requestMeta(c)); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	utils.MessageResponse(c, "Logged out successfully")
}
