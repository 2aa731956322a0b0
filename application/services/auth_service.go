package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/auth"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// refreshTokenTTL mirrors the user pool's refresh token validity.
const refreshTokenTTL = 30 * 24 * time.Hour

// LoginResult bundles the issued tokens with the session that tracks the
// refresh token.
type LoginResult struct {
	Tokens  *ports.TokenSet    `json:"tokens"`
	Session domain.UserSession `json:"session"`
}

// AuthService drives the identity provider and keeps the session table in
// step with logins and logouts.
type AuthService struct {
	identity ports.IdentityProvider
	sessions *SessionService
	logger   *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(identity ports.IdentityProvider, sessions *SessionService, logger *zap.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		sessions: sessions,
		logger:   logger,
	}
}

// SignUp registers a new user and returns the provider's user id. The user
// must confirm with the emailed code before logging in.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (string, error) {
	return s.identity.SignUp(ctx, email, password, name)
}

// ConfirmSignUp verifies the signup confirmation code.
func (s *AuthService) ConfirmSignUp(ctx context.Context, email, code string) error {
	return s.identity.ConfirmSignUp(ctx, email, code)
}

// Login authenticates the user and records a session for the issued refresh
// token. The user id is read from the ID token the provider just signed.
func (s *AuthService) Login(ctx context.Context, email, password, deviceInfo, ipAddress string) (*LoginResult, error) {
	tokens, err := s.identity.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	userID := s.subjectOf(tokens)
	session, err := s.sessions.CreateForLogin(ctx, userID, tokens.RefreshToken, deviceInfo, ipAddress, refreshTokenTTL)
	if err != nil {
		// The login itself succeeded; don't fail it over bookkeeping.
		s.logger.Warn("Failed to record login session",
			zap.String("userId", userID),
			zap.Error(err),
		)
		return &LoginResult{Tokens: tokens}, nil
	}

	return &LoginResult{Tokens: tokens, Session: session}, nil
}

// Refresh exchanges a refresh token for fresh access tokens.
func (s *AuthService) Refresh(ctx context.Context, email, refreshToken string) (*ports.TokenSet, error) {
	if refreshToken == "" {
		return nil, apperrors.NewValidationError("refreshToken is required")
	}
	return s.identity.Refresh(ctx, email, refreshToken)
}

// ForgotPassword starts the password reset flow.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.identity.ForgotPassword(ctx, email)
}

// ConfirmForgotPassword completes the password reset flow.
func (s *AuthService) ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) error {
	return s.identity.ConfirmForgotPassword(ctx, email, code, newPassword)
}

// Logout signs the user out everywhere and drops their sessions.
func (s *AuthService) Logout(ctx context.Context, userID, accessToken string) error {
	if err := s.identity.SignOut(ctx, accessToken); err != nil {
		return err
	}
	if err := s.sessions.RevokeAll(ctx, userID); err != nil {
		s.logger.Warn("Failed to revoke sessions on logout",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
	return nil
}

// subjectOf pulls the subject out of the freshly issued ID token. The token
// was signed by the provider moments ago, so the signature is not rechecked.
func (s *AuthService) subjectOf(tokens *ports.TokenSet) string {
	raw := tokens.IDToken
	if raw == "" {
		raw = tokens.AccessToken
	}
	claims, err := auth.ExtractUnverifiedClaims(raw)
	if err != nil {
		s.logger.Warn("Failed to parse issued token", zap.Error(err))
		return ""
	}
	return claims.UserID()
}
