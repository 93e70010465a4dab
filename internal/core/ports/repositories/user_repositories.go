package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail matches the email case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserLoggedIn(ctx context.Context, userID string, at time.Time) error
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
