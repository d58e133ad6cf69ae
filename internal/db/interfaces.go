package db

import (
	"context"

	"webintake-backend-go/internal/models"
)

// UserRepository defines the interface for user account storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	CountByEmail(ctx context.Context, email string) (int, error)
	Create(ctx context.Context, user *models.User) error // assigns the next sequential ID
	List(ctx context.Context) ([]*models.User, error)
}

// ProjectRepository defines the interface for project record storage operations.
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	ListByOwner(ctx context.Context, userID int) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	CountByIDPrefix(ctx context.Context, prefix string) (int, error)
	Create(ctx context.Context, project *models.Project) error // fails with ErrDuplicateID on id collision
	Update(ctx context.Context, project *models.Project) error
}
