package repository

import (
	"context"

	"conversia/backend/internal/user/domain"
)

// Repository is the read subset of the user store this service consumes.
// User creation and profile management are owned by another service.
type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
}
