package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffledger/attendance-backend-go/internal/domain/auth"
	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/user"
	"github.com/staffledger/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffledger/attendance-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	employeeRepo     employee.EmployeeRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
	googleService    oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		employeeRepo:     employeeRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		googleService:    googleService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := a.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	created, err := a.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashedStr,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Link the employee to the new account
	emp.UserID = &created.ID
	if err := a.employeeRepo.Update(ctx, emp); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to link employee: %w", err)
	}
	created.EmployeeID = &emp.ID

	return a.issueTokens(ctx, created, auth.SessionTrackingRequest{})
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if found.PasswordHash == nil {
		// OAuth-only account
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, found, session)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	profile, err := a.googleService.FetchProfile(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google profile: %w", err)
	}

	found, err := a.userRepo.GetByOAuth(ctx, "google", profile.Subject)
	if err == nil {
		return a.issueTokens(ctx, found, session)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Link by email when the account already exists without an OAuth identity
	found, err = a.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	provider := "google"
	found.OAuthProvider = &provider
	found.OAuthProviderID = &profile.Subject
	if err := a.userRepo.Update(ctx, found); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}

	return a.issueTokens(ctx, found, session)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, err := a.refreshTokenRepo.IsValid(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the presented token is single-use
	if err := a.refreshTokenRepo.Revoke(ctx, req.RefreshToken); err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(ctx, found, auth.SessionTrackingRequest{})
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return a.refreshTokenRepo.Revoke(ctx, refreshToken)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	found, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		UserID:     found.ID,
		Email:      found.Email,
		Role:       string(found.Role),
		EmployeeID: found.EmployeeID,
	}, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.refreshTokenRepo.Store(ctx, u.ID, refreshToken, refreshExpiresAt, session.IPAddress, session.UserAgent); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		TokenType:             "Bearer",
	}, nil
}
