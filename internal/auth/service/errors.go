package service

import "errors"

// Sentinel errors for the auth flows; the transport layer maps them to
// response codes. None of these are retried internally.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password with
	// one message, to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDeactivated is returned after a successful password check
	// against a deactivated account. Distinguishable from ErrInvalidCredentials
	// by design, trading enumeration resistance for user experience.
	ErrAccountDeactivated = errors.New("account is deactivated")
	// ErrInvalidStateParameter rejects an OAuth2 callback whose CSRF state is
	// unknown or already consumed. Raised before any code exchange.
	ErrInvalidStateParameter = errors.New("invalid state parameter")
	// ErrInvalidRefreshToken collapses unknown-token, inactive-session, and
	// expired-session causes into one externally visible refresh failure.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrSessionCannotBeRefreshed is returned when refresh eligibility policy
	// rejects the session.
	ErrSessionCannotBeRefreshed = errors.New("session cannot be refreshed")
	// ErrUserInactiveOrNotFound is returned when the session's owning user is
	// gone or deactivated at refresh time.
	ErrUserInactiveOrNotFound = errors.New("user inactive or not found")
	// ErrOAuthUserNotFound is returned when the provider-reported email has no
	// local account. Accounts are never auto-provisioned from OAuth2 data.
	ErrOAuthUserNotFound = errors.New("user not found, registration required")
)
