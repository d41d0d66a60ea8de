package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/auth"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/user"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/jwt"
)

type authServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
	logger     *slog.Logger
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, logger *slog.Logger) auth.AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	profile, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if profile.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*profile.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(profile.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.logger.Info("user logged in", "user_id", profile.ID, "role", profile.Role)

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

// Refresh implements auth.AuthService.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	profile, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

// Me implements auth.AuthService.
func (s *authServiceImpl) Me(ctx context.Context) (auth.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.ProfileResponse{}, auth.ErrInvalidToken
	}

	profile, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return auth.ProfileResponse{}, auth.ErrUserNotFound
		}
		return auth.ProfileResponse{}, err
	}

	return auth.ProfileResponse{
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
		Role:  string(profile.Role),
	}, nil
}
