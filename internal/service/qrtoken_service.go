package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/pkg/logger"
	"syscall-optimizer-backend/pkg/utils"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// qrImageSize is the side length in pixels of rendered QR codes.
const qrImageSize = 256

// tokenIssueRetries bounds regeneration attempts after a token collision.
// Collisions on 32 random bytes are effectively impossible, but a collision
// must regenerate rather than fail silently.
const tokenIssueRetries = 5

type QRTokenService struct {
	tokenStore    QRTokenStore
	userStore     UserStore
	activityStore ActivityStore
}

func NewQRTokenService(tokenStore QRTokenStore, userStore UserStore, activityStore ActivityStore) *QRTokenService {
	return &QRTokenService{
		tokenStore:    tokenStore,
		userStore:     userStore,
		activityStore: activityStore,
	}
}

// Issue creates a fresh active token for the user, superseding any prior
// active record in the same transaction.
func (s *QRTokenService) Issue(userID uint, meta RequestMeta) (*models.QRToken, error) {
	var record *models.QRToken
	var err error

	for attempt := 0; attempt < tokenIssueRetries; attempt++ {
		var token string
		token, err = utils.GenerateOpaqueToken()
		if err != nil {
			return nil, err
		}

		record, err = s.tokenStore.Regenerate(userID, token)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to store qr token: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to issue qr token: %w", err)
	}

	_ = s.activityStore.CreateActivityLog(&userID, models.ActionQRGenerated,
		"QR token generated", meta.IPAddress, meta.UserAgent)

	return record, nil
}

// Regenerate atomically revokes the user's current token and issues a new
// one. A racing token login sees either the old or the new active record.
func (s *QRTokenService) Regenerate(userID uint, meta RequestMeta) (*models.QRToken, error) {
	return s.Issue(userID, meta)
}

// Revoke deactivates the user's current token. Revoking an already-revoked
// token is a no-op, not an error.
func (s *QRTokenService) Revoke(userID uint, meta RequestMeta) error {
	if err := s.tokenStore.Revoke(userID); err != nil {
		return fmt.Errorf("failed to revoke qr token: %w", err)
	}

	_ = s.activityStore.CreateActivityLog(&userID, models.ActionQRRevoked,
		"QR token revoked", meta.IPAddress, meta.UserAgent)

	return nil
}

// Activate re-enables the user's newest token record.
func (s *QRTokenService) Activate(userID uint, meta RequestMeta) error {
	if err := s.tokenStore.Activate(userID); err != nil {
		return err
	}

	_ = s.activityStore.CreateActivityLog(&userID, models.ActionQRActivated,
		"QR token activated", meta.IPAddress, meta.UserAgent)

	return nil
}

// Current returns the user's newest token record with the rendered image.
// Render failures are recoverable: the response carries the token and an
// image_error instead of failing.
func (s *QRTokenService) Current(userID uint) (*models.QRTokenResponse, error) {
	record, err := s.tokenStore.FindCurrentByUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	response := &models.QRTokenResponse{
		ID:         record.ID,
		Token:      record.Token,
		Active:     record.Active,
		CreatedAt:  record.CreatedAt,
		RevokedAt:  record.RevokedAt,
		LastUsedAt: record.LastUsedAt,
	}

	png, err := s.RenderPNG(user.Username, record.Token)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Uint("user_id", userID).Msg("qr image render failed")
		response.ImageError = "QR image could not be rendered"
	} else {
		response.Image = base64.StdEncoding.EncodeToString(png)
	}

	return response, nil
}

// CurrentPNG renders the caller's newest token as a PNG.
func (s *QRTokenService) CurrentPNG(userID uint) ([]byte, error) {
	record, err := s.tokenStore.FindCurrentByUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	return s.RenderPNG(user.Username, record.Token)
}

// RenderPNG encodes username|token as a QR PNG so a scanner can log in
// without typing either.
func (s *QRTokenService) RenderPNG(username, token string) ([]byte, error) {
	payload := fmt.Sprintf("%s|%s", username, token)
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr image: %w", err)
	}
	return png, nil
}

// Resolve looks up a token record from raw QR payload. Accepts the
// preferred "username|token" form and the legacy bare token. Returns
// ErrTokenNotFound for unknown tokens and ErrTokenRevoked for inactive ones.
func (s *QRTokenService) Resolve(qrData string) (*models.QRToken, error) {
	qrData = strings.TrimSpace(qrData)
	if qrData == "" {
		return nil, apperrors.ErrTokenNotFound
	}

	tokenPart := qrData
	ownerPart := ""
	if idx := strings.IndexByte(qrData, '|'); idx >= 0 {
		ownerPart = strings.TrimSpace(qrData[:idx])
		tokenPart = strings.TrimSpace(qrData[idx+1:])
	}

	record, err := s.tokenStore.FindByToken(tokenPart)
	if err != nil {
		return nil, err
	}

	// When the payload names an owner it must match the record's owner;
	// otherwise treat the token as unknown rather than leaking ownership.
	if ownerPart != "" && record.User.Username != ownerPart {
		return nil, apperrors.ErrTokenNotFound
	}

	if !record.Active {
		return nil, apperrors.ErrTokenRevoked
	}

	return record, nil
}

// MarkUsed stamps a successful token login. Best effort.
func (s *QRTokenService) MarkUsed(record *models.QRToken) {
	if err := s.tokenStore.TouchLastUsed(record.ID); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Uint("token_id", record.ID).Msg("failed to stamp qr token use")
	}
}

// PurgeInactive hard-deletes a user's inactive token records. Admin only;
// active records are never purged.
func (s *QRTokenService) PurgeInactive(userID uint, adminID uint, meta RequestMeta) (int64, error) {
	purged, err := s.tokenStore.PurgeInactive(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge qr tokens: %w", err)
	}

	_ = s.activityStore.CreateActivityLog(&adminID, models.ActionQRRevoked,
		fmt.Sprintf("Purged %d inactive QR tokens for user %d", purged, userID),
		meta.IPAddress, meta.UserAgent)

	return purged, nil
}
