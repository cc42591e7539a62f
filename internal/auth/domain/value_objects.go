package domain

import (
	"strings"

	"github.com/google/uuid"
)

// AuthProvider identifies the authentication method or source of a session.
type AuthProvider string

const (
	ProviderLocal     AuthProvider = "LOCAL"
	ProviderGoogle    AuthProvider = "GOOGLE"
	ProviderGithub    AuthProvider = "GITHUB"
	ProviderMicrosoft AuthProvider = "MICROSOFT"
	ProviderFacebook  AuthProvider = "FACEBOOK"
	ProviderLinkedin  AuthProvider = "LINKEDIN"
)

// AccessToken is a structurally valid JWT: three dot-separated non-empty
// segments. Signature verification belongs to the JWT service, not here.
type AccessToken struct {
	value string
}

// NewAccessToken validates the JWT shape and wraps the raw token.
func NewAccessToken(token string) (AccessToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return AccessToken{}, newValidationError("access token must have three segments")
	}
	for _, p := range parts {
		if p == "" {
			return AccessToken{}, newValidationError("access token segment must not be empty")
		}
	}
	return AccessToken{value: token}, nil
}

func (t AccessToken) String() string { return t.value }

// RefreshToken is an opaque credential used solely to mint a new token pair.
type RefreshToken struct {
	value string
}

// NewRefreshToken requires at least 32 characters of opaque material.
func NewRefreshToken(token string) (RefreshToken, error) {
	if len(token) < 32 {
		return RefreshToken{}, newValidationError("refresh token must be at least 32 characters")
	}
	return RefreshToken{value: token}, nil
}

func (t RefreshToken) String() string { return t.value }

// OAuthCode is the authorization code returned by a provider callback.
type OAuthCode struct {
	value string
}

// NewOAuthCode requires at least 10 characters.
func NewOAuthCode(code string) (OAuthCode, error) {
	if len(code) < 10 {
		return OAuthCode{}, newValidationError("oauth authorization code must be at least 10 characters")
	}
	return OAuthCode{value: code}, nil
}

func (c OAuthCode) String() string { return c.value }

// OAuthState is the one-time CSRF token binding an authorization request to
// its callback.
type OAuthState struct {
	value string
}

// NewOAuthState requires at least 16 characters.
func NewOAuthState(state string) (OAuthState, error) {
	if len(state) < 16 {
		return OAuthState{}, newValidationError("oauth state must be at least 16 characters")
	}
	return OAuthState{value: state}, nil
}

func (s OAuthState) String() string { return s.value }

// OAuthProvider wraps an AuthProvider validated for enum membership.
type OAuthProvider struct {
	value AuthProvider
}

// NewOAuthProvider parses a provider name case-insensitively.
func NewOAuthProvider(provider string) (OAuthProvider, error) {
	switch AuthProvider(strings.ToUpper(provider)) {
	case ProviderLocal, ProviderGoogle, ProviderGithub, ProviderMicrosoft, ProviderFacebook, ProviderLinkedin:
		return OAuthProvider{value: AuthProvider(strings.ToUpper(provider))}, nil
	}
	return OAuthProvider{}, newValidationError("unknown auth provider: " + provider)
}

// OAuthProviderFrom wraps a known enum member without re-parsing.
func OAuthProviderFrom(p AuthProvider) OAuthProvider {
	return OAuthProvider{value: p}
}

func (p OAuthProvider) Provider() AuthProvider { return p.value }
func (p OAuthProvider) String() string         { return string(p.value) }
func (p OAuthProvider) IsLocal() bool          { return p.value == ProviderLocal }
func (p OAuthProvider) IsOAuth2() bool         { return p.value != ProviderLocal }

// AuthSessionID is the UUIDv4 identifier of a session. Immutable after creation.
type AuthSessionID struct {
	value string
}

// NewAuthSessionID allocates a fresh random session id.
func NewAuthSessionID() AuthSessionID {
	return AuthSessionID{value: uuid.NewString()}
}

// ParseAuthSessionID validates a persisted id. Only the canonical
// hyphenated form is accepted; uuid.Parse alone would also take braced,
// URN and bare-hex encodings.
func ParseAuthSessionID(id string) (AuthSessionID, error) {
	if len(id) != 36 {
		return AuthSessionID{}, newValidationError("session id must be a valid UUID")
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return AuthSessionID{}, newValidationError("session id must be a valid UUID")
	}
	return AuthSessionID{value: u.String()}, nil
}

func (id AuthSessionID) String() string { return id.value }
