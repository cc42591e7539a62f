package domain

import "time"

// Event is a domain event queued on the entity or published by a use case.
type Event interface {
	// EventName is the stable name used for routing (e.g. Kafka message key).
	EventName() string
	// OccurredOn is when the event happened, in UTC.
	OccurredOn() time.Time
}

// UserLoggedOutEvent is queued by AuthSession.Deactivate.
type UserLoggedOutEvent struct {
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e UserLoggedOutEvent) EventName() string     { return "auth.user_logged_out" }
func (e UserLoggedOutEvent) OccurredOn() time.Time { return e.OccurredAt }

// UserLoggedInEvent is published after a successful Login or OAuth2 callback.
type UserLoggedInEvent struct {
	UserID     string       `json:"user_id"`
	SessionID  string       `json:"session_id"`
	Provider   AuthProvider `json:"provider"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func (e UserLoggedInEvent) EventName() string     { return "auth.user_logged_in" }
func (e UserLoggedInEvent) OccurredOn() time.Time { return e.OccurredAt }

// OAuthLoginSuccessEvent is published after a successful OAuth2 callback,
// carrying the external account identity.
type OAuthLoginSuccessEvent struct {
	UserID     string       `json:"user_id"`
	Provider   AuthProvider `json:"provider"`
	ProviderID string       `json:"provider_id"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func (e OAuthLoginSuccessEvent) EventName() string     { return "auth.oauth_login_success" }
func (e OAuthLoginSuccessEvent) OccurredOn() time.Time { return e.OccurredAt }
