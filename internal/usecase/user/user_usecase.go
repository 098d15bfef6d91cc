package user

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	jwtSvc   auth.JWTService
	logger   *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(userRepo domain.UserRepository, jwtSvc auth.JWTService, logger *logger.Logger) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		logger:   logger,
	}
}

// Authenticate validates user credentials and returns a JWT token
func (uc *UserUseCase) Authenticate(username, password string) (string, error) {
	if username == "" || password == "" {
		uc.logger.Warn("Authentication attempt with empty credentials",
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get user from database during authentication",
			zap.String("username", username),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil {
		uc.logger.Warn("Authentication failed - user not found",
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if !uc.verifyPassword(password, user.Password) {
		uc.logger.Warn("Authentication failed - invalid password",
			zap.String("user_id", user.ID),
			zap.String("username", username))
		return "", domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate JWT token",
			zap.String("user_id", user.ID),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	if err := uc.userRepo.TouchActivity(user.ID); err != nil {
		uc.logger.Warn("Failed to stamp login activity",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	uc.logger.Info("User authentication successful",
		zap.String("user_id", user.ID),
		zap.String("username", username))

	return token, nil
}

// GetUserInfo retrieves user information by user ID
func (uc *UserUseCase) GetUserInfo(userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid user ID", 400, nil)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		uc.logger.Error("Failed to get user from database",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}

	return user, nil
}

// verifyPassword checks if the provided password matches the stored hash
func (uc *UserUseCase) verifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}

	hash := sha256.Sum256([]byte(password))
	passwordHash := hex.EncodeToString(hash[:])

	return passwordHash == hashedPassword
}
