package repository

import (
	"context"

	"conversia/backend/internal/auth/domain"
)

// Repository defines persistence for auth sessions.
type Repository interface {
	// Save upserts the session by id.
	Save(ctx context.Context, s *domain.AuthSession) error
	// FindByAccessToken returns the active session holding the token, or nil.
	FindByAccessToken(ctx context.Context, token domain.AccessToken) (*domain.AuthSession, error)
	// FindByRefreshToken returns the active session holding the token, or nil.
	FindByRefreshToken(ctx context.Context, token domain.RefreshToken) (*domain.AuthSession, error)
	// FindActiveSessionsByUser returns the user's active sessions, most
	// recently used first.
	FindActiveSessionsByUser(ctx context.Context, userID string) ([]*domain.AuthSession, error)
	// DeactivateSession marks one session inactive.
	DeactivateSession(ctx context.Context, id domain.AuthSessionID) error
	// DeactivateAllUserSessions marks every session of the user inactive.
	DeactivateAllUserSessions(ctx context.Context, userID string) error
	// CleanupExpiredSessions deletes expired rows and long-inactive
	// deactivated rows. Idempotent; invoked by an external scheduler.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
