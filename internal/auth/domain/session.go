package domain

import "time"

// AuthSession binds a user, a provider, and a live token pair for one
// authenticated device or client. The id never changes after creation,
// expiration is set only by domain policy, and activity is one-way: an
// inactive session is never reactivated (a new login creates a new session).
type AuthSession struct {
	id           AuthSessionID
	userID       string
	accessToken  AccessToken
	refreshToken RefreshToken
	provider     OAuthProvider
	providerID   string
	deviceInfo   string
	ipAddress    string
	active       bool
	expiresAt    time.Time
	createdAt    time.Time
	updatedAt    time.Time
	lastUsedAt   time.Time
	events       []Event
}

// NewSessionParams carries the caller-supplied state for a fresh session.
// ExpiresAt must come from CalculateExpiration, never from raw client input.
type NewSessionParams struct {
	UserID       string
	AccessToken  AccessToken
	RefreshToken RefreshToken
	Provider     OAuthProvider
	ProviderID   string
	DeviceInfo   string
	IPAddress    string
	ExpiresAt    time.Time
}

// NewAuthSession creates a session with a generated id and all three
// timestamps stamped with the same instant. No event is queued on creation.
func NewAuthSession(p NewSessionParams) *AuthSession {
	now := time.Now().UTC()
	return &AuthSession{
		id:           NewAuthSessionID(),
		userID:       p.UserID,
		accessToken:  p.AccessToken,
		refreshToken: p.RefreshToken,
		provider:     p.Provider,
		providerID:   p.ProviderID,
		deviceInfo:   p.DeviceInfo,
		ipAddress:    p.IPAddress,
		active:       true,
		expiresAt:    p.ExpiresAt,
		createdAt:    now,
		updatedAt:    now,
		lastUsedAt:   now,
	}
}

// SessionState is the fully populated persisted form of a session.
type SessionState struct {
	ID           AuthSessionID
	UserID       string
	AccessToken  AccessToken
	RefreshToken RefreshToken
	Provider     OAuthProvider
	ProviderID   string
	DeviceInfo   string
	IPAddress    string
	Active       bool
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastUsedAt   time.Time
}

// Hydrate reconstructs a session from storage without re-deriving timestamps.
// Nested value objects are expected to have been validated during scanning.
func Hydrate(st SessionState) *AuthSession {
	return &AuthSession{
		id:           st.ID,
		userID:       st.UserID,
		accessToken:  st.AccessToken,
		refreshToken: st.RefreshToken,
		provider:     st.Provider,
		providerID:   st.ProviderID,
		deviceInfo:   st.DeviceInfo,
		ipAddress:    st.IPAddress,
		active:       st.Active,
		expiresAt:    st.ExpiresAt,
		createdAt:    st.CreatedAt,
		updatedAt:    st.UpdatedAt,
		lastUsedAt:   st.LastUsedAt,
	}
}

func (s *AuthSession) ID() AuthSessionID          { return s.id }
func (s *AuthSession) UserID() string             { return s.userID }
func (s *AuthSession) AccessToken() AccessToken   { return s.accessToken }
func (s *AuthSession) RefreshToken() RefreshToken { return s.refreshToken }
func (s *AuthSession) Provider() OAuthProvider    { return s.provider }
func (s *AuthSession) ProviderID() string         { return s.providerID }
func (s *AuthSession) DeviceInfo() string         { return s.deviceInfo }
func (s *AuthSession) IPAddress() string          { return s.ipAddress }
func (s *AuthSession) IsActive() bool             { return s.active }
func (s *AuthSession) ExpiresAt() time.Time       { return s.expiresAt }
func (s *AuthSession) CreatedAt() time.Time       { return s.createdAt }
func (s *AuthSession) UpdatedAt() time.Time       { return s.updatedAt }
func (s *AuthSession) LastUsedAt() time.Time      { return s.lastUsedAt }

// Validate reports whether the session is usable. Inactivity is checked
// before expiry: an inactive session yields ErrSessionNotFound regardless of
// its expiresAt; an active but expired one yields ErrTokenExpired.
func (s *AuthSession) Validate() error {
	if !s.active {
		return ErrSessionNotFound
	}
	if !s.expiresAt.After(time.Now().UTC()) {
		return ErrTokenExpired
	}
	return nil
}

// UpdateLastUsed bumps lastUsedAt and updatedAt.
func (s *AuthSession) UpdateLastUsed() {
	now := time.Now().UTC()
	s.lastUsedAt = now
	s.updatedAt = now
}

// Refresh rotates the token pair in place. The id, user, provider and
// createdAt are untouched. Eligibility gates live in the caller.
func (s *AuthSession) Refresh(accessToken AccessToken, refreshToken RefreshToken, expiresAt time.Time) {
	now := time.Now().UTC()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.expiresAt = expiresAt
	s.updatedAt = now
	s.lastUsedAt = now
}

// Deactivate marks the session logged out and queues a UserLoggedOutEvent.
// Not idempotency-guarded: a second call queues a second event.
func (s *AuthSession) Deactivate() {
	now := time.Now().UTC()
	s.active = false
	s.updatedAt = now
	s.events = append(s.events, UserLoggedOutEvent{
		UserID:     s.userID,
		SessionID:  s.id.String(),
		OccurredAt: now,
	})
}

// PullDomainEvents returns the queued events and clears the queue. Call at
// most once per unit of work, after persistence succeeds.
func (s *AuthSession) PullDomainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}
