package core

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"webintake-backend-go/internal/db"
	"webintake-backend-go/internal/models"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// UserServiceConfig carries the signup and admin-login policy knobs.
type UserServiceConfig struct {
	// AllowedEmailDomain restricts signup emails when non-empty, e.g. "gmail.com".
	AllowedEmailDomain string
	// MaxAccountsPerEmail caps how many accounts may share one email address.
	MaxAccountsPerEmail int
	// AdminUsername and AdminPassword are injected from configuration and
	// compared in constant time; they are never stored in the user collection.
	AdminUsername string
	AdminPassword string
}

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	cfg      UserServiceConfig
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, cfg UserServiceConfig) UserService {
	return &userService{userRepo: userRepo, cfg: cfg}
}

// SignUp validates the request, hashes the password and stores the account.
// Validation failures name every offending field at once.
func (s *userService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	var fields []string
	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(req.Username) == "" {
		fields = append(fields, "username")
	}
	if req.Email == "" || (s.cfg.AllowedEmailDomain != "" && !strings.HasSuffix(req.Email, "@"+s.cfg.AllowedEmailDomain)) {
		fields = append(fields, "email")
	}
	if req.Password == "" {
		fields = append(fields, "password")
	}
	if !phonePattern.MatchString(req.Phone) {
		fields = append(fields, "phone")
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	if s.cfg.MaxAccountsPerEmail > 0 {
		count, err := s.userRepo.CountByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("counting accounts for email: %w", err)
		}
		if count >= s.cfg.MaxAccountsPerEmail {
			return nil, ErrEmailAccountLimit
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateID) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Login resolves a username/password pair to an identity. Admin credentials
// come from configuration, not from the user collection, and are compared in
// constant time.
func (s *userService) Login(ctx context.Context, username, password string) (models.Identity, error) {
	if s.cfg.AdminUsername != "" && s.isAdminLogin(username, password) {
		return models.Identity{Name: "Admin", Username: s.cfg.AdminUsername, Role: models.RoleAdmin}, nil
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, fmt.Errorf("looking up user %q: %w", username, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Identity{}, ErrInvalidCredentials
	}

	return models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     models.RoleUser,
	}, nil
}

func (s *userService) isAdminLogin(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	return userOK && passOK
}

// GetByID retrieves a user account by its sequential ID.
func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return user, nil
}
