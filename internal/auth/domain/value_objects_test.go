package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAccessToken(t *testing.T) {
	testCases := []struct {
		name  string
		token string
		valid bool
	}{
		{"three segments", "a.b.c", true},
		{"realistic jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", true},
		{"two segments", "a.b", false},
		{"four segments", "a.b.c.d", false},
		{"empty middle segment", "a..c", false},
		{"empty first segment", ".b.c", false},
		{"empty last segment", "a.b.", false},
		{"empty string", "", false},
		{"no dots", "abc", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := NewAccessToken(tc.token)
			if tc.valid {
				if err != nil {
					t.Fatalf("NewAccessToken(%q): %v", tc.token, err)
				}
				if tok.String() != tc.token {
					t.Errorf("String() = %q, want %q", tok.String(), tc.token)
				}
				return
			}
			if err == nil {
				t.Fatalf("NewAccessToken(%q) should return error", tc.token)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestNewRefreshToken_Length(t *testing.T) {
	if _, err := NewRefreshToken(strings.Repeat("r", 31)); err == nil {
		t.Error("31-char refresh token should be rejected")
	}
	tok, err := NewRefreshToken(strings.Repeat("r", 32))
	if err != nil {
		t.Fatalf("32-char refresh token: %v", err)
	}
	if len(tok.String()) != 32 {
		t.Errorf("String() length = %d, want 32", len(tok.String()))
	}
}

func TestNewOAuthCode_Length(t *testing.T) {
	if _, err := NewOAuthCode("123456789"); err == nil {
		t.Error("9-char code should be rejected")
	}
	if _, err := NewOAuthCode("1234567890"); err != nil {
		t.Errorf("10-char code: %v", err)
	}
}

func TestNewOAuthState_Length(t *testing.T) {
	if _, err := NewOAuthState(strings.Repeat("s", 15)); err == nil {
		t.Error("15-char state should be rejected")
	}
	if _, err := NewOAuthState(strings.Repeat("s", 16)); err != nil {
		t.Errorf("16-char state: %v", err)
	}
}

func TestNewOAuthProvider(t *testing.T) {
	testCases := []struct {
		in   string
		want AuthProvider
		err  bool
	}{
		{"LOCAL", ProviderLocal, false},
		{"google", ProviderGoogle, false},
		{"GitHub", ProviderGithub, false},
		{"MICROSOFT", ProviderMicrosoft, false},
		{"facebook", ProviderFacebook, false},
		{"linkedin", ProviderLinkedin, false},
		{"twitter", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := NewOAuthProvider(tc.in)
			if tc.err {
				if err == nil {
					t.Fatalf("NewOAuthProvider(%q) should return error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOAuthProvider(%q): %v", tc.in, err)
			}
			if p.Provider() != tc.want {
				t.Errorf("Provider() = %q, want %q", p.Provider(), tc.want)
			}
		})
	}
}

func TestOAuthProvider_Class(t *testing.T) {
	local := OAuthProviderFrom(ProviderLocal)
	if !local.IsLocal() || local.IsOAuth2() {
		t.Error("LOCAL should be local and not oauth2")
	}
	google := OAuthProviderFrom(ProviderGoogle)
	if google.IsLocal() || !google.IsOAuth2() {
		t.Error("GOOGLE should be oauth2 and not local")
	}
}

func TestAuthSessionID(t *testing.T) {
	id := NewAuthSessionID()
	if id.String() == "" {
		t.Fatal("NewAuthSessionID should not be empty")
	}
	other := NewAuthSessionID()
	if id.String() == other.String() {
		t.Error("two generated ids should differ")
	}

	parsed, err := ParseAuthSessionID(id.String())
	if err != nil {
		t.Fatalf("ParseAuthSessionID round trip: %v", err)
	}
	if parsed.String() != id.String() {
		t.Errorf("parsed = %q, want %q", parsed.String(), id.String())
	}

	if _, err := ParseAuthSessionID("not-a-uuid"); err == nil {
		t.Error("ParseAuthSessionID should reject a non-UUID")
	}
}

func TestParseAuthSessionID_CanonicalFormOnly(t *testing.T) {
	canonical := "550e8400-e29b-41d4-a716-446655440000"

	if _, err := ParseAuthSessionID(canonical); err != nil {
		t.Fatalf("ParseAuthSessionID(%q): %v", canonical, err)
	}

	rejected := []struct {
		name string
		id   string
	}{
		{"braced", "{550e8400-e29b-41d4-a716-446655440000}"},
		{"urn", "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
		{"no hyphens", "550e8400e29b41d4a716446655440000"},
		{"empty", ""},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAuthSessionID(tc.id)
			if err == nil {
				t.Fatalf("ParseAuthSessionID(%q) should reject non-canonical form", tc.id)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}
