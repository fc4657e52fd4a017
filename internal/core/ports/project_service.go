package ports

import (
	"context"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project. Tags may be
// raw: elements are split on commas, trimmed and cleaned by the service.
type CreateProjectInput struct {
	Title       string
	Description string
	Tags        []string
	Category    string
	LiveURL     string
	RepoURL     string
	OwnerID     string
	Image       *FileUpload
}

// UpdateProjectInput patches a project. Empty fields are left untouched; a
// nil Image keeps the current hosted asset.
type UpdateProjectInput struct {
	ID          string
	Caller      domain.AuthClaims
	Title       string
	Description string
	Tags        []string
	Category    string
	LiveURL     string
	RepoURL     string
	Image       *FileUpload
}

// ProjectService defines use-case operations for portfolio projects.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string, caller domain.AuthClaims) error
}
