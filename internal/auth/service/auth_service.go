package service

import (
	"context"
	"time"

	authdomain "conversia/backend/internal/auth/domain"
	userdomain "conversia/backend/internal/user/domain"
)

// AuthService orchestrates the five authentication flows: local login, OAuth2
// initiation, OAuth2 callback, token refresh, and logout. Each invocation is
// one short-lived sequential unit of work: resolve inputs into value objects,
// consult repositories, apply domain policy, persist, then publish events.
type AuthService struct {
	jwt      JwtService
	oauth2   OAuth2Service
	sessions SessionRepo
	users    UserRepo
	hasher   PasswordHasher
	events   EventPublisher
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(
	jwt JwtService,
	oauth2 OAuth2Service,
	sessions SessionRepo,
	users UserRepo,
	hasher PasswordHasher,
	events EventPublisher,
) *AuthService {
	return &AuthService{
		jwt:      jwt,
		oauth2:   oauth2,
		sessions: sessions,
		users:    users,
		hasher:   hasher,
		events:   events,
	}
}

// LoginInput carries local login credentials and optional client diagnostics.
type LoginInput struct {
	Email      string
	Password   string
	DeviceInfo string
	IPAddress  string
}

// UserInfo is the user projection embedded in auth responses.
type UserInfo struct {
	ID        string
	Email     string
	Name      string
	Role      string
	CompanyID string
	Avatar    string
}

// AuthResult is the response projection shared by Login, OAuth2Callback, and
// RefreshToken.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         UserInfo
	ExpiresAt    time.Time
}

// Login authenticates a local account, creates a session, and returns a
// minted token pair. Unknown email and wrong password both fail with
// ErrInvalidCredentials; a deactivated account fails with
// ErrAccountDeactivated only after the password check passed.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email, err := userdomain.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.VerifyPassword(s.hasher, in.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	accessToken, refreshToken, err := s.mintTokenPair(user)
	if err != nil {
		return nil, err
	}

	provider := authdomain.OAuthProviderFrom(authdomain.ProviderLocal)
	expiresAt := authdomain.CalculateExpiration(provider, false)
	session := authdomain.NewAuthSession(authdomain.NewSessionParams{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Provider:     provider,
		DeviceInfo:   in.DeviceInfo,
		IPAddress:    in.IPAddress,
		ExpiresAt:    expiresAt,
	})
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	events := session.PullDomainEvents()
	events = append(events, authdomain.UserLoggedInEvent{
		UserID:     user.ID,
		SessionID:  session.ID().String(),
		Provider:   provider.Provider(),
		OccurredAt: time.Now().UTC(),
	})
	if err := s.events.PublishMany(ctx, events); err != nil {
		return nil, err
	}

	return authResult(user, accessToken, refreshToken, expiresAt), nil
}

// Logout deactivates the session holding the given access token and publishes
// the logout event. An unknown token is a successful no-op.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	token, err := authdomain.NewAccessToken(accessToken)
	if err != nil {
		return err
	}
	session, err := s.sessions.FindByAccessToken(ctx, token)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	session.Deactivate()
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}
	return s.events.PublishMany(ctx, session.PullDomainEvents())
}

func (s *AuthService) mintTokenPair(user *userdomain.User) (authdomain.AccessToken, authdomain.RefreshToken, error) {
	accessToken, err := s.jwt.GenerateAccessToken(authdomain.AccessTokenPayload{
		Sub:       user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	}, 0)
	if err != nil {
		return authdomain.AccessToken{}, authdomain.RefreshToken{}, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(authdomain.RefreshTokenPayload{
		Sub:   user.ID,
		Email: user.Email,
	})
	if err != nil {
		return authdomain.AccessToken{}, authdomain.RefreshToken{}, err
	}
	return accessToken, refreshToken, nil
}

func authResult(user *userdomain.User, accessToken authdomain.AccessToken, refreshToken authdomain.RefreshToken, expiresAt time.Time) *AuthResult {
	return &AuthResult{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
		User: UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			CompanyID: user.CompanyID,
			Avatar:    user.Avatar,
		},
		ExpiresAt: expiresAt,
	}
}
