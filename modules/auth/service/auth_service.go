package service

import (
	"context"

	"mentorhub/core/cache"
	"mentorhub/core/constants"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/utils"
	"mentorhub/modules/auth/dto"
	"mentorhub/modules/auth/repository"

	"github.com/google/uuid"
)

// AuthService handles credential login and token lifecycle
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, c cache.Cache) AuthServiceInterface {
	return &AuthService{
		repo:  repo,
		cache: c,
	}
}

// Login authenticates a user with email and password.
// Repeated failures for one account are throttled through the cache.
func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	logger.Info("AuthService:Login:Start", "email", req.Email)

	loginKey := constants.RedisKeyLoginAttempt + req.Email

	// Check if the account is currently blocked due to failed attempts
	attempts, err := service.cache.IsLoginBlocked(ctx, loginKey)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check login attempts", err)
	}
	if attempts >= constants.MaxLoginAttempts {
		errExpire := service.cache.Expire(ctx, loginKey, constants.BlockDuration)
		if errExpire != nil {
			logger.Error("AuthService:Login:Expire:Error:", errExpire)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "too many failed login attempts, try again later", nil)
	}

	user, errGet := service.repo.GetUserByEmail(ctx, req.Email)
	if errGet != nil {
		logger.Error("AuthService:Login:GetUserByEmail:Error:", errGet)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", errGet)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		errIncrement := service.cache.IncrementLoginAttempt(ctx, loginKey)
		if errIncrement != nil {
			logger.Error("AuthService:Login:IncrementLoginAttempt:Error:", errIncrement)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	accessToken, err := utils.GenerateToken(user.ID, user.UserType, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}
	refreshToken, err := utils.GenerateToken(user.ID, user.UserType, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate refresh token", err)
	}

	// Clear any recorded attempts on success
	errDel := service.cache.Del(ctx, loginKey)
	if errDel != nil {
		logger.Error("AuthService:Login:Del:Error:", errDel)
	}

	logger.Info("AuthService:Login:Success", "user_id", user.ID, "user_type", user.UserType)
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Refresh rotates a refresh token into a new pair. The old refresh token
// is blacklisted so it can only be used once.
func (service *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, *errors.AppError) {
	blacklisted, err := service.cache.IsTokenBlacklisted(ctx, req.RefreshToken)
	if err != nil {
		logger.Error("AuthService:Refresh:IsTokenBlacklisted:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token is blacklisted", nil)
	}

	claims, err := utils.ValidateAndParseToken(req.RefreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or expired refresh token", nil)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token scope", nil)
	}

	user, errGet := service.repo.GetUserByID(ctx, claims.UserID)
	if errGet != nil {
		logger.Error("AuthService:Refresh:GetUserByID:Error:", errGet)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", errGet)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user no longer exists", nil)
	}

	accessToken, err := utils.GenerateToken(user.ID, user.UserType, constants.ScopeTokenAccess)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}
	refreshToken, err := utils.GenerateToken(user.ID, user.UserType, constants.ScopeTokenRefresh)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate refresh token", err)
	}

	errAdd := service.cache.AddToTokenBlacklist(ctx, req.RefreshToken)
	if errAdd != nil {
		logger.Error("AuthService:Refresh:AddToBlacklist:Error:", errAdd)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Logout blacklists the presented access token
func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	err := service.cache.AddToTokenBlacklist(ctx, token)
	if err != nil {
		logger.Error("AuthService:Logout:AddToBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to add token to blacklist", err)
	}
	return nil
}

// Me returns the calling user's account
func (service *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:Me:GetUserByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}
