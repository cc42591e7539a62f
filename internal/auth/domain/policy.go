package domain

import "time"

// Session lifetimes by provider class. CalculateExpiration is the single
// source of truth for session expiry; callers never pass raw durations.
const (
	refreshSessionTTL = 7 * 24 * time.Hour
	localSessionTTL   = 24 * time.Hour
	oauth2SessionTTL  = time.Hour
)

// CalculateExpiration returns the expiry for a new or refreshed session:
// 7 days for refresh-token sessions, 24 hours for local logins, 1 hour for
// any OAuth2 provider.
func CalculateExpiration(provider OAuthProvider, isRefreshToken bool) time.Time {
	now := time.Now().UTC()
	if isRefreshToken {
		return now.Add(refreshSessionTTL)
	}
	if provider.IsLocal() {
		return now.Add(localSessionTTL)
	}
	return now.Add(oauth2SessionTTL)
}

// CanRefreshSession reports whether the session is active and not yet expired.
func CanRefreshSession(s *AuthSession) bool {
	return s.IsActive() && s.ExpiresAt().After(time.Now().UTC())
}

// RequiresOAuth2Flow reports whether authenticating with provider goes
// through the authorization-code flow.
func RequiresOAuth2Flow(provider OAuthProvider) bool {
	return provider.IsOAuth2()
}

// SupportsRefreshTokens reports whether sessions for provider can be refreshed.
func SupportsRefreshTokens(provider OAuthProvider) bool {
	return provider.IsOAuth2() || provider.IsLocal()
}
