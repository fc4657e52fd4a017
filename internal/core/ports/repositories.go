package ports

import (
	"context"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// UserRepository persists the (single) site-owner identity.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAdmin returns the identity serving the public profile.
	FindAdmin(ctx context.Context) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindAll(ctx context.Context) ([]domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

type SkillRepository interface {
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	FindAll(ctx context.Context) ([]domain.Skill, error)
	// FindByName matches the stored (normalized) name.
	FindByName(ctx context.Context, name string) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

type EmploymentRepository interface {
	Create(ctx context.Context, e *domain.Employment) (*domain.Employment, error)
	FindAll(ctx context.Context) ([]domain.Employment, error)
	FindByID(ctx context.Context, id string) (*domain.Employment, error)
	Update(ctx context.Context, e *domain.Employment) (*domain.Employment, error)
	Delete(ctx context.Context, id string) error
}

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
	FindAll(ctx context.Context) ([]domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

type SubscriberRepository interface {
	Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error)
	FindByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	FindByToken(ctx context.Context, token string) (*domain.Subscriber, error)
	Delete(ctx context.Context, id string) error
}
