package security

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authdomain "conversia/backend/internal/auth/domain"
)

// ErrInvalidToken is returned when a token is malformed, expired, or fails
// signature, issuer, or audience checks.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the claim set minted into access tokens.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}

// RefreshClaims is the minimal claim set minted into refresh tokens.
type RefreshClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenProvider mints and verifies the HS256 JWTs backing auth sessions.
// It implements the JWT service port consumed by the auth use cases.
type TokenProvider struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenProvider returns a TokenProvider signing with the given shared
// secret. issuer and audience are set on claims and enforced on verify.
func NewTokenProvider(secret []byte, issuer, audience string, accessTTL, refreshTTL time.Duration) *TokenProvider {
	return &TokenProvider{
		secret:     secret,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken mints an access JWT from payload. expiresIn overrides
// the configured access TTL when positive.
func (p *TokenProvider) GenerateAccessToken(payload authdomain.AccessTokenPayload, expiresIn time.Duration) (authdomain.AccessToken, error) {
	ttl := p.accessTTL
	if expiresIn > 0 {
		ttl = expiresIn
	}
	now := time.Now().UTC()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Sub,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:     payload.Email,
		Role:      payload.Role,
		CompanyID: payload.CompanyID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return authdomain.AccessToken{}, err
	}
	return authdomain.NewAccessToken(signed)
}

// GenerateRefreshToken mints a refresh JWT from payload using the refresh TTL.
func (p *TokenProvider) GenerateRefreshToken(payload authdomain.RefreshTokenPayload) (authdomain.RefreshToken, error) {
	now := time.Now().UTC()
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Sub,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.refreshTTL)),
		},
		Email: payload.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return authdomain.RefreshToken{}, err
	}
	return authdomain.NewRefreshToken(signed)
}

// VerifyToken parses and validates any token minted by this provider
// (signature, exp, iss, aud) and returns its payload. Role and CompanyID are
// empty for refresh tokens.
func (p *TokenProvider) VerifyToken(tokenString string) (authdomain.AccessTokenPayload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil {
		return authdomain.AccessTokenPayload{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return authdomain.AccessTokenPayload{}, ErrInvalidToken
	}
	if claims.Issuer != p.issuer {
		return authdomain.AccessTokenPayload{}, ErrInvalidToken
	}
	audOk := false
	for _, a := range claims.Audience {
		if a == p.audience {
			audOk = true
			break
		}
	}
	if !audOk {
		return authdomain.AccessTokenPayload{}, ErrInvalidToken
	}
	return authdomain.AccessTokenPayload{
		Sub:       claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		CompanyID: claims.CompanyID,
	}, nil
}

// ExtractTokenFromHeader returns the bearer token from an Authorization
// header value, or ok false for anything that is not "Bearer <token>".
func (p *TokenProvider) ExtractTokenFromHeader(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
