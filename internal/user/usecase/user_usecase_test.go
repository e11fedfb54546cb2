package usecase

import (
	"path/filepath"
	"testing"

	authdomain "postpilot-backend/internal/auth/domain"
	authrepo "postpilot-backend/internal/auth/repository"
	userdto "postpilot-backend/internal/user/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (UserUsecase, authrepo.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))
	repo := authrepo.NewUserRepository(db)
	return NewUserUsecase(repo), repo
}

func createUser(t *testing.T, repo authrepo.UserRepository, email string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUpdateSubscription(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := createUser(t, repo, "a@x.com")

	updated, err := uc.UpdateSubscription(user.ID, authdomain.TierPromotion)
	require.NoError(t, err)
	require.NotNil(t, updated.SubscriptionTier)
	assert.Equal(t, authdomain.TierPromotion, *updated.SubscriptionTier)

	// Persisted, not just mutated in memory.
	persisted, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted.SubscriptionTier)
	assert.Equal(t, authdomain.TierPromotion, *persisted.SubscriptionTier)
}

func TestUpdateSubscriptionInvalidTier(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := createUser(t, repo, "a@x.com")

	_, err := uc.UpdateSubscription(user.ID, authdomain.Tier("PREMIUM"))
	assert.ErrorIs(t, err, authdomain.ErrInvalidTier)
}

func TestUpdateSubscriptionUnknownUser(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.UpdateSubscription("no-such-id", authdomain.TierBaseline)
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
}

func TestUpdateSettingsReviewMode(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := createUser(t, repo, "a@x.com")

	enabled := true
	updated, err := uc.UpdateSettings(user.ID, &userdto.UpdateSettingsRequest{ReviewMode: &enabled})
	require.NoError(t, err)
	assert.True(t, updated.ReviewMode)

	// Empty update leaves settings untouched.
	updated, err = uc.UpdateSettings(user.ID, &userdto.UpdateSettingsRequest{})
	require.NoError(t, err)
	assert.True(t, updated.ReviewMode)
}

func TestGetProfile(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := createUser(t, repo, "a@x.com")

	profile, err := uc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)

	_, err = uc.GetProfile("no-such-id")
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
}
