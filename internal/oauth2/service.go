package oauth2

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"conversia/backend/internal/auth/domain"
	"conversia/backend/internal/auth/service"
)

const (
	defaultStateTTL     = 10 * time.Minute
	stateBytes          = 32
	maxResponseBodySize = 1 << 20
)

// Service implements the OAuth2 service port over plain HTTP calls to the
// configured providers.
type Service struct {
	providers  map[domain.AuthProvider]ProviderConfig
	states     StateStore
	httpClient *http.Client
	stateTTL   time.Duration
}

var _ service.OAuth2Service = (*Service)(nil)

// NewService returns an OAuth2 Service over the given provider map and state
// store. A nil httpClient gets a 10s-timeout default; a zero stateTTL gets 10m.
func NewService(providers map[domain.AuthProvider]ProviderConfig, states StateStore, httpClient *http.Client, stateTTL time.Duration) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if stateTTL <= 0 {
		stateTTL = defaultStateTTL
	}
	return &Service{
		providers:  providers,
		states:     states,
		httpClient: httpClient,
		stateTTL:   stateTTL,
	}
}

// GenerateState mints a random one-time CSRF state and stores it with a TTL.
func (s *Service) GenerateState(ctx context.Context) (domain.OAuthState, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return domain.OAuthState{}, err
	}
	state, err := domain.NewOAuthState(hex.EncodeToString(b))
	if err != nil {
		return domain.OAuthState{}, err
	}
	if err := s.states.Save(ctx, state.String(), s.stateTTL); err != nil {
		return domain.OAuthState{}, fmt.Errorf("persist oauth2 state: %w", err)
	}
	return state, nil
}

// ValidateState consumes the state; replayed or expired states report false.
func (s *Service) ValidateState(ctx context.Context, state string) (bool, error) {
	return s.states.Consume(ctx, state)
}

// GenerateAuthorizationURL builds the provider's authorization redirect with
// client_id, redirect_uri, scope, response_type=code, and state. Google gets
// access_type=offline and prompt=consent so it issues refresh tokens.
func (s *Service) GenerateAuthorizationURL(provider domain.OAuthProvider, state domain.OAuthState) (string, error) {
	cfg, err := s.providerConfig(provider)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("client_id", cfg.ClientID)
	params.Set("redirect_uri", cfg.RedirectURI)
	params.Set("scope", strings.Join(cfg.Scopes, " "))
	params.Set("response_type", "code")
	params.Set("state", state.String())
	if provider.Provider() == domain.ProviderGoogle {
		params.Set("access_type", "offline")
		params.Set("prompt", "consent")
	}
	return cfg.AuthorizationURL + "?" + params.Encode(), nil
}

// ExchangeCodeForToken exchanges the authorization code for provider tokens
// and fetches the normalized user info.
func (s *Service) ExchangeCodeForToken(ctx context.Context, provider domain.OAuthProvider, code domain.OAuthCode, state domain.OAuthState) (*service.OAuth2Exchange, error) {
	cfg, err := s.providerConfig(provider)
	if err != nil {
		return nil, err
	}
	accessToken, refreshToken, err := s.exchangeCode(ctx, cfg, code.String())
	if err != nil {
		return nil, err
	}
	userInfo, err := s.fetchUserInfo(ctx, cfg, provider, accessToken)
	if err != nil {
		return nil, err
	}
	return &service.OAuth2Exchange{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserInfo:     userInfo,
	}, nil
}

func (s *Service) providerConfig(provider domain.OAuthProvider) (ProviderConfig, error) {
	cfg, ok := s.providers[provider.Provider()]
	if !ok {
		return ProviderConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
	return cfg, nil
}

func (s *Service) exchangeCode(ctx context.Context, cfg ProviderConfig, code string) (accessToken, refreshToken string, err error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", cfg.RedirectURI)
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json") // GitHub defaults to form-encoded without this

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("token exchange request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return "", "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("token exchange failed: status=%d", resp.StatusCode)
	}

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", "", fmt.Errorf("token exchange returned no access token")
	}
	return payload.AccessToken, payload.RefreshToken, nil
}

func (s *Service) fetchUserInfo(ctx context.Context, cfg ProviderConfig, provider domain.OAuthProvider, accessToken string) (service.OAuth2UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.UserInfoURL, nil)
	if err != nil {
		return service.OAuth2UserInfo{}, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return service.OAuth2UserInfo{}, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return service.OAuth2UserInfo{}, fmt.Errorf("read userinfo response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return service.OAuth2UserInfo{}, fmt.Errorf("userinfo failed: status=%d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return service.OAuth2UserInfo{}, fmt.Errorf("decode userinfo response: %w", err)
	}
	return normalizeUserInfo(provider.Provider(), raw), nil
}

// normalizeUserInfo maps each provider's userinfo shape onto the common form.
func normalizeUserInfo(provider domain.AuthProvider, raw map[string]any) service.OAuth2UserInfo {
	info := service.OAuth2UserInfo{
		ID:    stringValue(raw["id"]),
		Email: stringValue(raw["email"]),
		Name:  stringValue(raw["name"]),
	}
	switch provider {
	case domain.ProviderGoogle:
		info.Avatar = stringValue(raw["picture"])
	case domain.ProviderGithub:
		info.Avatar = stringValue(raw["avatar_url"])
		if info.Name == "" {
			info.Name = stringValue(raw["login"])
		}
	case domain.ProviderFacebook:
		if picture, ok := raw["picture"].(map[string]any); ok {
			if data, ok := picture["data"].(map[string]any); ok {
				info.Avatar = stringValue(data["url"])
			}
		}
	}
	return info
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// GitHub numeric ids decode as float64.
		return fmt.Sprintf("%.0f", t)
	default:
		return ""
	}
}
