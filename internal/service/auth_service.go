package service

import (
	"errors"
	"fmt"
	"time"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/pkg/utils"
)

type AuthService struct {
	userStore     UserStore
	activityStore ActivityStore
	qrTokens      *QRTokenService
}

func NewAuthService(userStore UserStore, activityStore ActivityStore, qrTokens *QRTokenService) *AuthService {
	return &AuthService{
		userStore:     userStore,
		activityStore: activityStore,
		qrTokens:      qrTokens,
	}
}

// LoginResponse represents the response structure for login. Both the
// password path and the QR token path return this same shape.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RequestMeta carries client details used for activity logging.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Login authenticates a user by username and password
func (s *AuthService) Login(username, password string, meta RequestMeta) (*LoginResponse, error) {
	user, err := s.userStore.FindUserByUsername(username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	response, err := s.establishSession(user)
	if err != nil {
		return nil, err
	}

	userIDPtr := &user.ID
	_ = s.activityStore.CreateActivityLog(userIDPtr, models.ActionLogin,
		fmt.Sprintf("User %s logged in", username), meta.IPAddress, meta.UserAgent)

	return response, nil
}

// Register creates a new user account and issues the initial QR token.
func (s *AuthService) Register(username, password, role string, meta RequestMeta) (*LoginResponse, error) {
	existingUser, err := s.userStore.FindUserByUsername(username)
	if err == nil && existingUser != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userStore.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// First QR token; failure here must not block registration
	if _, err := s.qrTokens.Issue(user.ID, meta); err != nil {
		_ = s.activityStore.CreateActivityLog(&user.ID, models.ActionQRGenerated,
			fmt.Sprintf("Initial QR token issuance failed: %v", err), meta.IPAddress, meta.UserAgent)
	}

	response, err := s.establishSession(user)
	if err != nil {
		return nil, err
	}

	userIDPtr := &user.ID
	_ = s.activityStore.CreateActivityLog(userIDPtr, models.ActionRegistration,
		fmt.Sprintf("User %s registered", username), meta.IPAddress, meta.UserAgent)

	return response, nil
}

// establishSession builds the session payload shared by every login path:
// a JWT access token plus a stored refresh token.
func (s *AuthService) establishSession(user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userStore.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// LoginWithToken authenticates via a QR token payload. On success the
// session is identical to a password login; the only write against the
// token record is the last-used stamp (tokens are reusable until revoked).
func (s *AuthService) LoginWithToken(qrData string, meta RequestMeta) (*LoginResponse, error) {
	record, err := s.qrTokens.Resolve(qrData)
	if err != nil {
		return nil, err
	}

	user := record.User
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	s.qrTokens.MarkUsed(record)

	response, err := s.establishSession(&user)
	if err != nil {
		return nil, err
	}

	userIDPtr := &user.ID
	_ = s.activityStore.CreateActivityLog(userIDPtr, models.ActionQRLogin,
		fmt.Sprintf("User %s logged in via QR code", user.Username), meta.IPAddress, meta.UserAgent)

	return response, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userStore.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", apperrors.ErrRefreshNotFound
	}

	if time.Now().After(token.ExpiresAt) {
		return "", apperrors.ErrRefreshExpired
	}

	if !token.User.IsActive {
		return "", apperrors.ErrAccountDisabled
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string, userID *uint, meta RequestMeta) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userStore.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	_ = s.activityStore.CreateActivityLog(userID, models.ActionLogout,
		"User logged out", meta.IPAddress, meta.UserAgent)

	return nil
}

// IsAuthError reports whether err is one of the credential failures that
// must surface as a single generic rejection.
func IsAuthError(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidCredentials) ||
		errors.Is(err, apperrors.ErrAccountDisabled) ||
		errors.Is(err, apperrors.ErrTokenNotFound) ||
		errors.Is(err, apperrors.ErrTokenRevoked)
}
