package ports

import (
	"context"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// SendMessageInput is a public contact-form submission.
type SendMessageInput struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Body        string
}

// MessageService manages the contact inbox.
type MessageService interface {
	Send(ctx context.Context, input SendMessageInput) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	// Get retrieves a single message; an unread message transitions to read
	// as an observable side effect.
	Get(ctx context.Context, id string) (*domain.Message, error)
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

// AddSkillInput carries a new skill; icon and category fall back to defaults.
type AddSkillInput struct {
	Name     string
	Icon     string
	Category string
}

// SkillService manages the skills list.
type SkillService interface {
	Add(ctx context.Context, input AddSkillInput) (*domain.Skill, error)
	List(ctx context.Context) ([]domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// EmploymentInput carries create/update fields for a work-history entry. On
// update, empty fields are left untouched.
type EmploymentInput struct {
	Title       string
	Company     string
	Location    string
	StartDate   string
	EndDate     string
	Description []string
}

// EmploymentService manages work-history entries.
type EmploymentService interface {
	Create(ctx context.Context, input EmploymentInput) (*domain.Employment, error)
	List(ctx context.Context) ([]domain.Employment, error)
	Get(ctx context.Context, id string) (*domain.Employment, error)
	Update(ctx context.Context, id string, input EmploymentInput) (*domain.Employment, error)
	Delete(ctx context.Context, id string) error
}

// JobInput carries create/update fields for a job application.
type JobInput struct {
	Company    string
	Position   string
	Status     string
	Link       string
	Notes      string
	ResumeUsed string
	Tags       []string
}

// JobService manages the private job-application tracker.
type JobService interface {
	Create(ctx context.Context, input JobInput) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Update(ctx context.Context, id string, input JobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

// NewsletterService manages the mailing list.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, token string) error
}
