package db

import (
	"context"
	"fmt"
	"strings"

	"webintake-backend-go/internal/models"
)

const projectsCollection = "projects"

// fileProjectRepository implements ProjectRepository on top of the flat-file Store.
type fileProjectRepository struct {
	store *Store
}

// NewFileProjectRepository creates a ProjectRepository backed by the given Store.
func NewFileProjectRepository(store *Store) ProjectRepository {
	return &fileProjectRepository{store: store}
}

func (r *fileProjectRepository) load() ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.store.Load(projectsCollection, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *fileProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	return r.load()
}

func (r *fileProjectRepository) ListByOwner(ctx context.Context, userID int) ([]*models.Project, error) {
	projects, err := r.load()
	if err != nil {
		return nil, err
	}
	owned := make([]*models.Project, 0)
	for _, p := range projects {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *fileProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	projects, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: project id %q", ErrNotFound, id)
}

func (r *fileProjectRepository) CountByIDPrefix(ctx context.Context, prefix string) (int, error) {
	projects, err := r.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range projects {
		if strings.HasPrefix(p.ID, prefix) {
			count++
		}
	}
	return count, nil
}

// Create appends the project under the collection lock. An existing record
// with the same ID is never overwritten; the caller re-derives the identifier
// on ErrDuplicateID.
func (r *fileProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.store.WithLock(projectsCollection, func() error {
		projects, err := r.load()
		if err != nil {
			return err
		}
		for _, p := range projects {
			if p.ID == project.ID {
				return fmt.Errorf("%w: project id %q", ErrDuplicateID, project.ID)
			}
		}
		projects = append(projects, project)
		return r.store.Save(projectsCollection, projects)
	})
}

// Update replaces the stored record with the same ID.
func (r *fileProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.store.WithLock(projectsCollection, func() error {
		projects, err := r.load()
		if err != nil {
			return err
		}
		for i, p := range projects {
			if p.ID == project.ID {
				projects[i] = project
				return r.store.Save(projectsCollection, projects)
			}
		}
		return fmt.Errorf("%w: project id %q", ErrNotFound, project.ID)
	})
}
