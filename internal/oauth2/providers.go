// Package oauth2 implements the OAuth2 service port: authorization URL
// construction, one-time CSRF state management, and authorization-code
// exchange against external identity providers.
package oauth2

import (
	"errors"

	"conversia/backend/internal/auth/domain"
)

// ErrUnsupportedProvider is returned for enum members the exchange adapter
// does not implement (LOCAL, MICROSOFT, LINKEDIN). They are valid at value
// object construction but rejected here at flow time.
var ErrUnsupportedProvider = errors.New("unsupported oauth2 provider")

// ProviderConfig holds one provider's endpoints and client credentials.
type ProviderConfig struct {
	ClientID         string
	ClientSecret     string
	RedirectURI      string
	AuthorizationURL string
	TokenURL         string
	UserInfoURL      string
	Scopes           []string
}

// Credentials is the per-provider client registration loaded from config.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// DefaultProviders returns the provider map for the three implemented
// providers, with their well-known endpoints and standard scopes.
func DefaultProviders(google, github, facebook Credentials) map[domain.AuthProvider]ProviderConfig {
	return map[domain.AuthProvider]ProviderConfig{
		domain.ProviderGoogle: {
			ClientID:         google.ClientID,
			ClientSecret:     google.ClientSecret,
			RedirectURI:      google.RedirectURI,
			AuthorizationURL: "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:         "https://oauth2.googleapis.com/token",
			UserInfoURL:      "https://www.googleapis.com/oauth2/v2/userinfo",
			Scopes:           []string{"openid", "profile", "email"},
		},
		domain.ProviderGithub: {
			ClientID:         github.ClientID,
			ClientSecret:     github.ClientSecret,
			RedirectURI:      github.RedirectURI,
			AuthorizationURL: "https://github.com/login/oauth/authorize",
			TokenURL:         "https://github.com/login/oauth/access_token",
			UserInfoURL:      "https://api.github.com/user",
			Scopes:           []string{"read:user", "user:email"},
		},
		domain.ProviderFacebook: {
			ClientID:         facebook.ClientID,
			ClientSecret:     facebook.ClientSecret,
			RedirectURI:      facebook.RedirectURI,
			AuthorizationURL: "https://www.facebook.com/v18.0/dialog/oauth",
			TokenURL:         "https://graph.facebook.com/v18.0/oauth/access_token",
			UserInfoURL:      "https://graph.facebook.com/me?fields=id,name,email,picture",
			Scopes:           []string{"email", "public_profile"},
		},
	}
}
