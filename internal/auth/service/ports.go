package service

import (
	"context"
	"time"

	authdomain "conversia/backend/internal/auth/domain"
	userdomain "conversia/backend/internal/user/domain"
)

// JwtService mints and verifies the JWTs carried by sessions. Implemented by
// security.TokenProvider.
type JwtService interface {
	GenerateAccessToken(payload authdomain.AccessTokenPayload, expiresIn time.Duration) (authdomain.AccessToken, error)
	GenerateRefreshToken(payload authdomain.RefreshTokenPayload) (authdomain.RefreshToken, error)
	VerifyToken(token string) (authdomain.AccessTokenPayload, error)
	ExtractTokenFromHeader(header string) (string, bool)
}

// OAuth2UserInfo is the normalized identity a provider reports for an account.
type OAuth2UserInfo struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

// OAuth2Exchange is the provider-side result of exchanging an authorization code.
type OAuth2Exchange struct {
	AccessToken  string
	RefreshToken string // empty when the provider does not issue one
	UserInfo     OAuth2UserInfo
}

// OAuth2Service drives the authorization-code flow against external providers.
type OAuth2Service interface {
	GenerateAuthorizationURL(provider authdomain.OAuthProvider, state authdomain.OAuthState) (string, error)
	ExchangeCodeForToken(ctx context.Context, provider authdomain.OAuthProvider, code authdomain.OAuthCode, state authdomain.OAuthState) (*OAuth2Exchange, error)
	// ValidateState consumes the one-time CSRF state; a second validation of
	// the same value reports false.
	ValidateState(ctx context.Context, state string) (bool, error)
	GenerateState(ctx context.Context) (authdomain.OAuthState, error)
}

// SessionRepo is the minimal session persistence needed by the auth flows.
type SessionRepo interface {
	Save(ctx context.Context, s *authdomain.AuthSession) error
	FindByAccessToken(ctx context.Context, token authdomain.AccessToken) (*authdomain.AuthSession, error)
	FindByRefreshToken(ctx context.Context, token authdomain.RefreshToken) (*authdomain.AuthSession, error)
}

// UserRepo is the read subset of the user store needed by the auth flows.
type UserRepo interface {
	FindByEmail(ctx context.Context, email userdomain.Email) (*userdomain.User, error)
	FindByID(ctx context.Context, id string) (*userdomain.User, error)
}

// EventPublisher delivers domain events after persistence. Delivery is
// best-effort: a failed publish is surfaced to the caller but the already
// persisted session is not rolled back.
type EventPublisher interface {
	Publish(ctx context.Context, event authdomain.Event) error
	PublishMany(ctx context.Context, events []authdomain.Event) error
}

// PasswordHasher verifies local credentials. Implemented by security.Hasher.
type PasswordHasher interface {
	Compare(hash string, password []byte) error
}
