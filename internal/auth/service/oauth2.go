package service

import (
	"context"
	"time"

	authdomain "conversia/backend/internal/auth/domain"
	userdomain "conversia/backend/internal/user/domain"
)

// OAuth2LoginInput selects the provider to initiate an authorization flow with.
type OAuth2LoginInput struct {
	Provider   string
	DeviceInfo string
	IPAddress  string
}

// OAuth2LoginResult carries the redirect target and the CSRF state bound to it.
type OAuth2LoginResult struct {
	AuthorizationURL string
	State            string
}

// OAuth2CallbackInput carries the provider callback parameters.
type OAuth2CallbackInput struct {
	Provider   string
	Code       string
	State      string
	DeviceInfo string
	IPAddress  string
}

// OAuth2Login initiates the authorization-code flow: generates a one-time
// CSRF state and builds the provider's authorization URL. No session is
// created at this step.
func (s *AuthService) OAuth2Login(ctx context.Context, in OAuth2LoginInput) (*OAuth2LoginResult, error) {
	provider, err := authdomain.NewOAuthProvider(in.Provider)
	if err != nil {
		return nil, err
	}
	state, err := s.oauth2.GenerateState(ctx)
	if err != nil {
		return nil, err
	}
	authorizationURL, err := s.oauth2.GenerateAuthorizationURL(provider, state)
	if err != nil {
		return nil, err
	}
	return &OAuth2LoginResult{
		AuthorizationURL: authorizationURL,
		State:            state.String(),
	}, nil
}

// OAuth2Callback completes the authorization-code flow. The CSRF state is
// validated before any exchange call; the provider-reported email must match
// an existing local account (no auto-provisioning).
func (s *AuthService) OAuth2Callback(ctx context.Context, in OAuth2CallbackInput) (*AuthResult, error) {
	ok, err := s.oauth2.ValidateState(ctx, in.State)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStateParameter
	}

	provider, err := authdomain.NewOAuthProvider(in.Provider)
	if err != nil {
		return nil, err
	}
	code, err := authdomain.NewOAuthCode(in.Code)
	if err != nil {
		return nil, err
	}
	state, err := authdomain.NewOAuthState(in.State)
	if err != nil {
		return nil, err
	}

	exchange, err := s.oauth2.ExchangeCodeForToken(ctx, provider, code, state)
	if err != nil {
		return nil, err
	}

	email, err := userdomain.NewEmail(exchange.UserInfo.Email)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrOAuthUserNotFound
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	accessToken, refreshToken, err := s.mintTokenPair(user)
	if err != nil {
		return nil, err
	}

	expiresAt := authdomain.CalculateExpiration(provider, false)
	session := authdomain.NewAuthSession(authdomain.NewSessionParams{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Provider:     provider,
		ProviderID:   exchange.UserInfo.ID,
		DeviceInfo:   in.DeviceInfo,
		IPAddress:    in.IPAddress,
		ExpiresAt:    expiresAt,
	})
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	events := session.PullDomainEvents()
	events = append(events,
		authdomain.UserLoggedInEvent{
			UserID:     user.ID,
			SessionID:  session.ID().String(),
			Provider:   provider.Provider(),
			OccurredAt: now,
		},
		authdomain.OAuthLoginSuccessEvent{
			UserID:     user.ID,
			Provider:   provider.Provider(),
			ProviderID: exchange.UserInfo.ID,
			OccurredAt: now,
		},
	)
	if err := s.events.PublishMany(ctx, events); err != nil {
		return nil, err
	}

	res := authResult(user, accessToken, refreshToken, expiresAt)
	// The local record's avatar wins; the provider-supplied one is a fallback.
	if res.User.Avatar == "" {
		res.User.Avatar = exchange.UserInfo.Avatar
	}
	return res, nil
}
