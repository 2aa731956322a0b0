package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// SessionService tracks refresh-token sessions. Unlike content records,
// sessions are hard-deleted on revocation.
type SessionService struct {
	repo        ports.Repository[domain.UserSession]
	logger      *zap.Logger
	userIDIndex string
}

// NewSessionService creates a session service.
func NewSessionService(repo ports.Repository[domain.UserSession], logger *zap.Logger, userIDIndex string) *SessionService {
	return &SessionService{
		repo:        repo,
		logger:      logger,
		userIDIndex: userIDIndex,
	}
}

// CreateForLogin records the session opened by a successful login.
func (s *SessionService) CreateForLogin(ctx context.Context, userID, refreshToken, deviceInfo, ipAddress string, ttl time.Duration) (domain.UserSession, error) {
	if userID == "" {
		return domain.UserSession{}, apperrors.NewValidationError("userId is required")
	}

	session := domain.UserSession{
		UserID:       userID,
		RefreshToken: refreshToken,
		DeviceInfo:   deviceInfo,
		IPAddress:    ipAddress,
		ExpiresAt:    time.Now().Add(ttl).Format(time.RFC3339),
	}
	session.Record = newRecord(uuid.New().String())
	if err := s.repo.Put(ctx, session); err != nil {
		return domain.UserSession{}, err
	}
	return session, nil
}

// ListByUser returns the sessions of one user.
func (s *SessionService) ListByUser(ctx context.Context, userID string, p ports.Page) ([]domain.UserSession, string, error) {
	return s.repo.QueryIndex(ctx, s.userIDIndex, "userId", userID, p)
}

// Revoke deletes one session. The caller must own it.
func (s *SessionService) Revoke(ctx context.Context, userID, sessionID string) error {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return apperrors.NewForbiddenError("session belongs to another user")
	}
	return s.repo.Delete(ctx, sessionID)
}

// RevokeAll deletes every session of the user. Individual delete failures
// are logged and do not stop the sweep.
func (s *SessionService) RevokeAll(ctx context.Context, userID string) error {
	page := ports.Page{Limit: 100}
	for {
		sessions, next, err := s.ListByUser(ctx, userID, page)
		if err != nil {
			return err
		}
		for _, session := range sessions {
			if err := s.repo.Delete(ctx, session.ID); err != nil {
				s.logger.Warn("Failed to delete session",
					zap.String("sessionId", session.ID),
					zap.Error(err),
				)
			}
		}
		if next == "" {
			return nil
		}
		page.NextToken = next
	}
}
