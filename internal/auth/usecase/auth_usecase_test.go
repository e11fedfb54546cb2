package usecase

import (
	"path/filepath"
	"testing"
	"time"

	authdomain "postpilot-backend/internal/auth/domain"
	authdto "postpilot-backend/internal/auth/dto"
	"postpilot-backend/internal/auth/password"
	"postpilot-backend/internal/auth/repository"
	"postpilot-backend/internal/auth/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))
	return db
}

func newTestUsecase(t *testing.T) (AuthUsecase, repository.UserRepository, *token.Manager) {
	t.Helper()
	repo := repository.NewUserRepository(newTestDB(t))
	tokens := token.NewManager("test-secret", time.Hour)
	uc := NewAuthUsecase(repo, password.NewHasher(bcrypt.MinCost), tokens)
	return uc, repo, tokens
}

func TestSignupThenLogin(t *testing.T) {
	uc, repo, tokens := newTestUsecase(t)

	signupResp, err := uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	require.NotEmpty(t, signupResp.Token)

	created, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "password1", created.PasswordHash)
	assert.False(t, created.ReviewMode)
	assert.Nil(t, created.SubscriptionTier)

	loginResp, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.Token)

	// Distinct tokens, same subject, subject matches the created user.
	assert.NotEqual(t, signupResp.Token, loginResp.Token)

	sub1, err := tokens.Verify(signupResp.Token)
	require.NoError(t, err)
	sub2, err := tokens.Verify(loginResp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, sub1)
	assert.Equal(t, created.ID, sub2)
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	_, err = uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password2"})
	assert.ErrorIs(t, err, authdomain.ErrEmailTaken)
}

func TestSignupRaceResolvedByStore(t *testing.T) {
	// Two inserts for the same email straight through the repository,
	// modelling concurrent signups that both passed the usecase pre-check.
	// The unique index must reject the second one.
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(&authdomain.User{Email: "a@x.com", PasswordHash: "h1"}))

	err := repo.Create(&authdomain.User{Email: "a@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, authdomain.ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&authdomain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	_, wrongPassword := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "wrong-pass"})
	_, unknownEmail := uc.Login(&authdto.LoginRequest{Email: "b@x.com", Password: "password1"})

	assert.ErrorIs(t, wrongPassword, authdomain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, authdomain.ErrInvalidCredentials)
	// Same error value, so the externally observable output is identical.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestProfile(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)

	_, err := uc.Signup(&authdto.SignupRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)

	created, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)

	user, err := uc.Profile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = uc.Profile("no-such-id")
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
}
