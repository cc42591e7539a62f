package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"conversia/backend/internal/user/domain"
)

// PostgresRepository reads users from the users table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a user read repository backed by the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, name, role, company_id, avatar, password_hash, is_active`

// FindByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail returns the user for the normalized email, or nil if not found.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email.String())
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                               domain.User
		companyID, avatar, passwordHash *string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &companyID, &avatar, &passwordHash, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if companyID != nil {
		u.CompanyID = *companyID
	}
	if avatar != nil {
		u.Avatar = *avatar
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	return &u, nil
}
