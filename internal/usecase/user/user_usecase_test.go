package user

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saradorri/gameplatform/internal/config"
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/domain/mocks"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
)

func newTestUseCase(t *testing.T) (*UserUseCase, *mocks.MockUserRepository, auth.JWTService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	uc := &UserUseCase{
		userRepo: mockUserRepo,
		jwtSvc:   jwtSvc,
		logger:   logger.NewNop(),
	}
	return uc, mockUserRepo, jwtSvc
}

func hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

func TestAuthenticateSuccess(t *testing.T) {
	uc, mockUserRepo, jwtSvc := newTestUseCase(t)

	mockUserRepo.EXPECT().GetByUsername("alice").Return(&domain.User{
		ID:       "alice",
		Username: "alice",
		Password: hashPassword("password123"),
		Role:     domain.RoleMember,
	}, nil)
	mockUserRepo.EXPECT().TouchActivity("alice").Return(nil)

	token, err := uc.Authenticate("alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID)
	assert.Equal(t, string(domain.RoleMember), claims.Role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	uc, mockUserRepo, _ := newTestUseCase(t)

	mockUserRepo.EXPECT().GetByUsername("alice").Return(&domain.User{
		ID:       "alice",
		Username: "alice",
		Password: hashPassword("password123"),
	}, nil)

	_, err := uc.Authenticate("alice", "wrong")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	uc, mockUserRepo, _ := newTestUseCase(t)

	mockUserRepo.EXPECT().GetByUsername("nobody").Return(nil, nil)

	_, err := uc.Authenticate("nobody", "password123")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestAuthenticateEmptyCredentials(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	for _, creds := range [][2]string{{"", "p"}, {"u", ""}, {"", ""}} {
		_, err := uc.Authenticate(creds[0], creds[1])
		require.Error(t, err)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	}
}

func TestAuthenticateTouchActivityFailureIgnored(t *testing.T) {
	uc, mockUserRepo, _ := newTestUseCase(t)

	mockUserRepo.EXPECT().GetByUsername("alice").Return(&domain.User{
		ID:       "alice",
		Username: "alice",
		Password: hashPassword("password123"),
	}, nil)
	mockUserRepo.EXPECT().TouchActivity("alice").Return(assert.AnError)

	token, err := uc.Authenticate("alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestGetUserInfo(t *testing.T) {
	uc, mockUserRepo, _ := newTestUseCase(t)

	mockUserRepo.EXPECT().GetByID("alice").Return(&domain.User{ID: "alice"}, nil)

	user, err := uc.GetUserInfo("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
}

func TestGetUserInfoNotFound(t *testing.T) {
	uc, mockUserRepo, _ := newTestUseCase(t)

	mockUserRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	_, err := uc.GetUserInfo("ghost")
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
