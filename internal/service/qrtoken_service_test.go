package service_test

import (
	"encoding/base64"
	"testing"
	"time"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/mocks"
	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeQRStore is an in-memory QRTokenStore used to exercise the full token
// lifecycle (issue, reuse, regenerate, revoke) without a database.
type fakeQRStore struct {
	nextID  uint
	records []*models.QRToken
	owner   models.User
}

func newFakeQRStore(owner models.User) *fakeQRStore {
	return &fakeQRStore{nextID: 1, owner: owner}
}

func (f *fakeQRStore) Create(token *models.QRToken) error {
	token.ID = f.nextID
	f.nextID++
	token.CreatedAt = time.Now()
	f.records = append(f.records, token)
	return nil
}

func (f *fakeQRStore) FindByToken(token string) (*models.QRToken, error) {
	for _, record := range f.records {
		if record.Token == token {
			copied := *record
			copied.User = f.owner
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeQRStore) FindCurrentByUserID(userID uint) (*models.QRToken, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			copied := *f.records[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeQRStore) Revoke(userID uint) error {
	now := time.Now()
	for _, record := range f.records {
		if record.UserID == userID && record.Active {
			record.Active = false
			record.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeQRStore) Activate(userID uint) error {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			f.records[i].Active = true
			f.records[i].RevokedAt = nil
			return nil
		}
	}
	return apperrors.ErrTokenNotFound
}

func (f *fakeQRStore) Regenerate(userID uint, newToken string) (*models.QRToken, error) {
	for _, record := range f.records {
		if record.Token == newToken {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	_ = f.Revoke(userID)
	record := &models.QRToken{UserID: userID, Token: newToken, Active: true}
	_ = f.Create(record)
	copied := *record
	return &copied, nil
}

func (f *fakeQRStore) TouchLastUsed(id uint) error {
	now := time.Now()
	for _, record := range f.records {
		if record.ID == id {
			record.LastUsedAt = &now
		}
	}
	return nil
}

func (f *fakeQRStore) CountActiveByUserID(userID uint) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.UserID == userID && record.Active {
			count++
		}
	}
	return count, nil
}

func (f *fakeQRStore) PurgeInactive(userID uint) (int64, error) {
	kept := f.records[:0]
	var purged int64
	for _, record := range f.records {
		if record.UserID == userID && !record.Active {
			purged++
			continue
		}
		kept = append(kept, record)
	}
	f.records = kept
	return purged, nil
}

func newQRFixture(t *testing.T, owner models.User) (*service.QRTokenService, *fakeQRStore) {
	ctrl := gomock.NewController(t)

	userStore := mocks.NewMockUserStore(ctrl)
	userStore.EXPECT().FindUserByID(owner.ID).Return(&owner, nil).AnyTimes()

	activityStore := mocks.NewMockActivityStore(ctrl)
	activityStore.EXPECT().
		CreateActivityLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	store := newFakeQRStore(owner)
	return service.NewQRTokenService(store, userStore, activityStore), store
}

func qrOwner() models.User {
	return models.User{ID: 7, Username: "alice", Role: models.RoleUser, IsActive: true}
}

// A token stays valid across any number of logins until it is revoked, and
// regeneration revokes the old token before the new one becomes usable.
func TestQRTokenService_RegenerateInvalidatesOldToken(t *testing.T) {
	svc, _ := newQRFixture(t, qrOwner())
	meta := service.RequestMeta{}

	first, err := svc.Issue(7, meta)
	require.NoError(t, err)

	// Reusable until revoked: resolving twice in a row both succeed.
	for i := 0; i < 2; i++ {
		record, err := svc.Resolve(first.Token)
		require.NoError(t, err)
		assert.Equal(t, first.Token, record.Token)
	}

	second, err := svc.Regenerate(7, meta)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	_, err = svc.Resolve(first.Token)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	record, err := svc.Resolve(second.Token)
	require.NoError(t, err)
	assert.Equal(t, second.Token, record.Token)
}

func TestQRTokenService_NeverMoreThanOneActiveToken(t *testing.T) {
	svc, store := newQRFixture(t, qrOwner())
	meta := service.RequestMeta{}

	for i := 0; i < 4; i++ {
		_, err := svc.Regenerate(7, meta)
		require.NoError(t, err)
	}

	count, err := store.CountActiveByUserID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestQRTokenService_RevokeIsIdempotent(t *testing.T) {
	svc, store := newQRFixture(t, qrOwner())
	meta := service.RequestMeta{}

	issued, err := svc.Issue(7, meta)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(7, meta))
	require.NoError(t, svc.Revoke(7, meta))

	_, err = svc.Resolve(issued.Token)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	count, err := store.CountActiveByUserID(7)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQRTokenService_ActivateRestoresNewestToken(t *testing.T) {
	svc, _ := newQRFixture(t, qrOwner())
	meta := service.RequestMeta{}

	issued, err := svc.Issue(7, meta)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(7, meta))
	require.NoError(t, svc.Activate(7, meta))

	record, err := svc.Resolve(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.Token, record.Token)
}

func TestQRTokenService_Resolve(t *testing.T) {
	svc, _ := newQRFixture(t, qrOwner())
	issued, err := svc.Issue(7, service.RequestMeta{})
	require.NoError(t, err)

	t.Run("bare token", func(t *testing.T) {
		record, err := svc.Resolve(issued.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), record.UserID)
	})

	t.Run("scanner payload", func(t *testing.T) {
		record, err := svc.Resolve("alice|" + issued.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), record.UserID)
	})

	t.Run("owner mismatch", func(t *testing.T) {
		_, err := svc.Resolve("bob|" + issued.Token)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Resolve("no-such-token")
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := svc.Resolve("   ")
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})
}

func TestQRTokenService_IssueRetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)

	owner := qrOwner()
	userStore := mocks.NewMockUserStore(ctrl)
	activityStore := mocks.NewMockActivityStore(ctrl)
	activityStore.EXPECT().
		CreateActivityLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	qrStore := mocks.NewMockQRTokenStore(ctrl)
	gomock.InOrder(
		qrStore.EXPECT().Regenerate(owner.ID, gomock.Any()).Return(nil, gorm.ErrDuplicatedKey),
		qrStore.EXPECT().Regenerate(owner.ID, gomock.Any()).DoAndReturn(
			func(userID uint, token string) (*models.QRToken, error) {
				return &models.QRToken{ID: 2, UserID: userID, Token: token, Active: true}, nil
			}),
	)

	svc := service.NewQRTokenService(qrStore, userStore, activityStore)

	record, err := svc.Issue(owner.ID, service.RequestMeta{})
	require.NoError(t, err)
	assert.True(t, record.Active)
}

func TestQRTokenService_CurrentIncludesImage(t *testing.T) {
	svc, _ := newQRFixture(t, qrOwner())
	_, err := svc.Issue(7, service.RequestMeta{})
	require.NoError(t, err)

	response, err := svc.Current(7)
	require.NoError(t, err)

	assert.NotEmpty(t, response.Token)
	assert.True(t, response.Active)
	assert.Empty(t, response.ImageError)

	png, err := base64.StdEncoding.DecodeString(response.Image)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestQRTokenService_PurgeInactiveKeepsActiveToken(t *testing.T) {
	svc, store := newQRFixture(t, qrOwner())
	meta := service.RequestMeta{}

	for i := 0; i < 3; i++ {
		_, err := svc.Regenerate(7, meta)
		require.NoError(t, err)
	}

	purged, err := svc.PurgeInactive(7, 1, meta)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	count, err := store.CountActiveByUserID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
