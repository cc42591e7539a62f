package service

import (
	"context"
	"errors"

	authdomain "conversia/backend/internal/auth/domain"
)

// RefreshInput carries the refresh token and optional client diagnostics.
type RefreshInput struct {
	RefreshToken string
	DeviceInfo   string
	IPAddress    string
}

// RefreshToken rotates the session's token pair in place, keeping its id.
// Unknown tokens, inactive sessions, and expired sessions all surface as
// ErrInvalidRefreshToken. Concurrent refreshes of the same session are not
// guarded; the last save wins.
func (s *AuthService) RefreshToken(ctx context.Context, in RefreshInput) (*AuthResult, error) {
	token, err := authdomain.NewRefreshToken(in.RefreshToken)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.FindByRefreshToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidRefreshToken
	}

	if err := session.Validate(); err != nil {
		if errors.Is(err, authdomain.ErrTokenExpired) || errors.Is(err, authdomain.ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !authdomain.CanRefreshSession(session) {
		return nil, ErrSessionCannotBeRefreshed
	}

	user, err := s.users.FindByID(ctx, session.UserID())
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUserInactiveOrNotFound
	}

	accessToken, refreshToken, err := s.mintTokenPair(user)
	if err != nil {
		return nil, err
	}

	// Expiry is recomputed from the session's original provider, not from the
	// refresh request.
	expiresAt := authdomain.CalculateExpiration(session.Provider(), false)
	session.Refresh(accessToken, refreshToken, expiresAt)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	if err := s.events.PublishMany(ctx, session.PullDomainEvents()); err != nil {
		return nil, err
	}

	return authResult(user, accessToken, refreshToken, expiresAt), nil
}
