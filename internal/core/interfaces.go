package core

import (
	"context"

	"webintake-backend-go/internal/models"
)

// UserService defines the interface for account and credential operations.
type UserService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error)
	// Login authenticates a username/password pair against either the
	// configured admin credentials or a stored user account and returns the
	// resolved identity.
	Login(ctx context.Context, username, password string) (models.Identity, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// ProjectService defines the interface for intake and review operations.
type ProjectService interface {
	Create(ctx context.Context, identity models.Identity, req models.CreateProjectRequest) (*models.Project, error)
	List(ctx context.Context, identity models.Identity) ([]*models.Project, error)
	Get(ctx context.Context, identity models.Identity, id string) (*models.Project, error)
	Update(ctx context.Context, identity models.Identity, id string, patch models.UpdateProjectRequest) (*models.Project, error)
	GenerateBill(ctx context.Context, identity models.Identity, id, websiteURL string) (*models.Project, error)
	MarkPayment(ctx context.Context, identity models.Identity, id, paymentType string) (*models.Project, error)
}

// Notifier receives submitted projects for operator notification. Delivery is
// best-effort and fully detached from the request: implementations must not
// block and must swallow (log) transport failures.
type Notifier interface {
	ProjectSubmitted(project *models.Project)
}
