package service_test

import (
	"testing"
	"time"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/mocks"
	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/internal/service"
	"syscall-optimizer-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	utils.InitJWT("test-secret", 15*time.Minute, 7*24*time.Hour)
}

type authFixture struct {
	userStore     *mocks.MockUserStore
	qrStore       *mocks.MockQRTokenStore
	activityStore *mocks.MockActivityStore
	auth          *service.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)

	userStore := mocks.NewMockUserStore(ctrl)
	qrStore := mocks.NewMockQRTokenStore(ctrl)
	activityStore := mocks.NewMockActivityStore(ctrl)

	// Activity logging is best effort everywhere; tests never assert on it.
	activityStore.EXPECT().
		CreateActivityLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	qrTokens := service.NewQRTokenService(qrStore, userStore, activityStore)
	auth := service.NewAuthService(userStore, activityStore, qrTokens)

	return &authFixture{
		userStore:     userStore,
		qrStore:       qrStore,
		activityStore: activityStore,
		auth:          auth,
	}
}

func testUser(t *testing.T, password string) *models.User {
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	return &models.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	f.userStore.EXPECT().FindUserByUsername("alice").Return(user, nil)
	f.userStore.EXPECT().CreateRefreshToken(gomock.Any()).Return(nil)

	resp, err := f.auth.Login("alice", "password123", service.RequestMeta{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	claims, err := utils.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Role, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	f.userStore.EXPECT().FindUserByUsername("alice").Return(user, nil)

	_, err := f.auth.Login("alice", "wrong-password", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.True(t, service.IsAuthError(err))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	f.userStore.EXPECT().FindUserByUsername("ghost").Return(nil, apperrors.ErrInvalidCredentials)

	_, err := f.auth.Login("ghost", "whatever", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.True(t, service.IsAuthError(err))
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")
	user.IsActive = false

	f.userStore.EXPECT().FindUserByUsername("alice").Return(user, nil)

	_, err := f.auth.Login("alice", "password123", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	assert.True(t, service.IsAuthError(err))
}

func TestAuthService_LoginWithToken_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	record := &models.QRToken{
		ID:     3,
		UserID: user.ID,
		Token:  "opaque-token",
		Active: true,
		User:   *user,
	}

	f.qrStore.EXPECT().FindByToken("opaque-token").Return(record, nil)
	f.qrStore.EXPECT().TouchLastUsed(record.ID).Return(nil)
	f.userStore.EXPECT().CreateRefreshToken(gomock.Any()).Return(nil)

	resp, err := f.auth.LoginWithToken("alice|opaque-token", service.RequestMeta{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "alice", resp.User.Username)
}

// A session established with a QR token must carry exactly the same claims
// as one established with a password, so downstream authorization cannot
// distinguish the two paths.
func TestAuthService_SessionParityBetweenLoginPaths(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	record := &models.QRToken{
		ID:     3,
		UserID: user.ID,
		Token:  "opaque-token",
		Active: true,
		User:   *user,
	}

	f.userStore.EXPECT().FindUserByUsername("alice").Return(user, nil)
	f.qrStore.EXPECT().FindByToken("opaque-token").Return(record, nil)
	f.qrStore.EXPECT().TouchLastUsed(record.ID).Return(nil)
	f.userStore.EXPECT().CreateRefreshToken(gomock.Any()).Return(nil).Times(2)

	passwordResp, err := f.auth.Login("alice", "password123", service.RequestMeta{})
	require.NoError(t, err)

	tokenResp, err := f.auth.LoginWithToken("opaque-token", service.RequestMeta{})
	require.NoError(t, err)

	passwordClaims, err := utils.ValidateAccessToken(passwordResp.AccessToken)
	require.NoError(t, err)
	tokenClaims, err := utils.ValidateAccessToken(tokenResp.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, passwordClaims.UserID, tokenClaims.UserID)
	assert.Equal(t, passwordClaims.Role, tokenClaims.Role)
	assert.Equal(t, passwordResp.User, tokenResp.User)
}

func TestAuthService_LoginWithToken_Revoked(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	record := &models.QRToken{
		ID:     3,
		UserID: user.ID,
		Token:  "opaque-token",
		Active: false,
		User:   *user,
	}

	f.qrStore.EXPECT().FindByToken("opaque-token").Return(record, nil)

	_, err := f.auth.LoginWithToken("opaque-token", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	assert.True(t, service.IsAuthError(err))
}

func TestAuthService_LoginWithToken_OwnerMismatch(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	record := &models.QRToken{
		ID:     3,
		UserID: user.ID,
		Token:  "opaque-token",
		Active: true,
		User:   *user,
	}

	f.qrStore.EXPECT().FindByToken("opaque-token").Return(record, nil)

	_, err := f.auth.LoginWithToken("bob|opaque-token", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestAuthService_LoginWithToken_DisabledOwner(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")
	user.IsActive = false

	record := &models.QRToken{
		ID:     3,
		UserID: user.ID,
		Token:  "opaque-token",
		Active: true,
		User:   *user,
	}

	f.qrStore.EXPECT().FindByToken("opaque-token").Return(record, nil)

	_, err := f.auth.LoginWithToken("opaque-token", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestAuthService_RefreshAccessToken_Expired(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	stored := &models.RefreshToken{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
		User:      *user,
	}

	f.userStore.EXPECT().FindRefreshTokenByHash(gomock.Any()).Return(stored, nil)

	_, err := f.auth.RefreshAccessToken("some-refresh-token")

	assert.ErrorIs(t, err, apperrors.ErrRefreshExpired)
}

func TestAuthService_RefreshAccessToken_DisabledUser(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")
	user.IsActive = false

	stored := &models.RefreshToken{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		User:      *user,
	}

	f.userStore.EXPECT().FindRefreshTokenByHash(gomock.Any()).Return(stored, nil)

	_, err := f.auth.RefreshAccessToken("some-refresh-token")

	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestAuthService_RefreshAccessToken_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := testUser(t, "password123")

	stored := &models.RefreshToken{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		User:      *user,
	}

	f.userStore.EXPECT().FindRefreshTokenByHash(utils.HashRefreshToken("refresh-token")).Return(stored, nil)

	accessToken, err := f.auth.RefreshAccessToken("refresh-token")

	require.NoError(t, err)
	claims, err := utils.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	f := newAuthFixture(t)
	existing := testUser(t, "password123")

	f.userStore.EXPECT().FindUserByUsername("alice").Return(existing, nil)

	_, err := f.auth.Register("alice", "password123", "", service.RequestMeta{})

	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	f := newAuthFixture(t)

	f.userStore.EXPECT().FindUserByUsername("carol").Return(nil, apperrors.ErrInvalidCredentials)
	f.userStore.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.RoleUser, u.Role)
		assert.True(t, u.IsActive)
		u.ID = 42
		return nil
	})
	f.qrStore.EXPECT().Regenerate(uint(42), gomock.Any()).DoAndReturn(
		func(userID uint, token string) (*models.QRToken, error) {
			return &models.QRToken{ID: 1, UserID: userID, Token: token, Active: true}, nil
		})
	f.userStore.EXPECT().CreateRefreshToken(gomock.Any()).Return(nil)

	resp, err := f.auth.Register("carol", "password123", "", service.RequestMeta{})

	require.NoError(t, err)
	assert.Equal(t, "carol", resp.User.Username)
	assert.Equal(t, models.RoleUser, resp.User.Role)
}
