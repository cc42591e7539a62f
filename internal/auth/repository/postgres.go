package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"conversia/backend/internal/auth/domain"
)

// How long deactivated sessions are kept before cleanup deletes them.
const keepDeactivatedFor = 7 * 24 * time.Hour

// PostgresRepository persists auth sessions in the auth_sessions table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a session repository backed by the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const sessionColumns = `id, user_id, access_token, refresh_token, provider, provider_id,
	device_info, ip_address, is_active, expires_at, created_at, updated_at, last_used_at`

// Save upserts the session by id.
func (r *PostgresRepository) Save(ctx context.Context, s *domain.AuthSession) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO auth_sessions (`+sessionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			is_active = EXCLUDED.is_active,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at,
			last_used_at = EXCLUDED.last_used_at`,
		s.ID().String(),
		s.UserID(),
		s.AccessToken().String(),
		s.RefreshToken().String(),
		s.Provider().String(),
		nullIfEmpty(s.ProviderID()),
		nullIfEmpty(s.DeviceInfo()),
		nullIfEmpty(s.IPAddress()),
		s.IsActive(),
		s.ExpiresAt(),
		s.CreatedAt(),
		s.UpdatedAt(),
		s.LastUsedAt(),
	)
	return err
}

// FindByAccessToken returns the active session holding the token, or nil.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) FindByAccessToken(ctx context.Context, token domain.AccessToken) (*domain.AuthSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM auth_sessions
		 WHERE access_token = $1 AND is_active = true`,
		token.String())
	return scanSession(row)
}

// FindByRefreshToken returns the active session holding the token, or nil.
func (r *PostgresRepository) FindByRefreshToken(ctx context.Context, token domain.RefreshToken) (*domain.AuthSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM auth_sessions
		 WHERE refresh_token = $1 AND is_active = true`,
		token.String())
	return scanSession(row)
}

// FindActiveSessionsByUser returns the user's active sessions, most recently
// used first.
func (r *PostgresRepository) FindActiveSessionsByUser(ctx context.Context, userID string) ([]*domain.AuthSession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM auth_sessions
		 WHERE user_id = $1 AND is_active = true
		 ORDER BY last_used_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.AuthSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeactivateSession marks one session inactive.
func (r *PostgresRepository) DeactivateSession(ctx context.Context, id domain.AuthSessionID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE auth_sessions SET is_active = false, updated_at = $2 WHERE id = $1`,
		id.String(), time.Now().UTC())
	return err
}

// DeactivateAllUserSessions marks every session of the user inactive.
func (r *PostgresRepository) DeactivateAllUserSessions(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE auth_sessions SET is_active = false, updated_at = $2 WHERE user_id = $1`,
		userID, time.Now().UTC())
	return err
}

// CleanupExpiredSessions deletes expired rows and deactivated rows untouched
// for longer than the retention window. Returns the number of rows deleted.
func (r *PostgresRepository) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`DELETE FROM auth_sessions
		 WHERE expires_at < $1
		    OR (is_active = false AND updated_at < $2)`,
		now, now.Add(-keepDeactivatedFor))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.AuthSession, error) {
	var (
		id, userID, accessToken, refreshToken, provider string
		providerID, deviceInfo, ipAddress               *string
		isActive                                        bool
		expiresAt, createdAt, updatedAt, lastUsedAt     time.Time
	)
	err := row.Scan(&id, &userID, &accessToken, &refreshToken, &provider,
		&providerID, &deviceInfo, &ipAddress, &isActive,
		&expiresAt, &createdAt, &updatedAt, &lastUsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return hydrateSession(id, userID, accessToken, refreshToken, provider,
		providerID, deviceInfo, ipAddress, isActive,
		expiresAt, createdAt, updatedAt, lastUsedAt)
}

// hydrateSession rebuilds the entity, re-running value object validation on
// the nested token, provider, and id fields.
func hydrateSession(
	id, userID, accessToken, refreshToken, provider string,
	providerID, deviceInfo, ipAddress *string,
	isActive bool,
	expiresAt, createdAt, updatedAt, lastUsedAt time.Time,
) (*domain.AuthSession, error) {
	sessionID, err := domain.ParseAuthSessionID(id)
	if err != nil {
		return nil, fmt.Errorf("hydrate session %s: %w", id, err)
	}
	access, err := domain.NewAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("hydrate session %s: %w", id, err)
	}
	refresh, err := domain.NewRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("hydrate session %s: %w", id, err)
	}
	prov, err := domain.NewOAuthProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("hydrate session %s: %w", id, err)
	}
	return domain.Hydrate(domain.SessionState{
		ID:           sessionID,
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
		Provider:     prov,
		ProviderID:   deref(providerID),
		DeviceInfo:   deref(deviceInfo),
		IPAddress:    deref(ipAddress),
		Active:       isActive,
		ExpiresAt:    expiresAt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		LastUsedAt:   lastUsedAt,
	}), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
