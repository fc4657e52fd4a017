package ports

import (
	"context"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// RegisterInput carries the first-use registration payload.
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	JobTitle    string
	Bio         string
	ShortBio    string
	SocialLinks *domain.SocialLinks
}

// UpdateProfileInput patches the owner profile. Empty string fields are left
// untouched; nil uploads leave the corresponding hosted asset alone.
type UpdateProfileInput struct {
	UserID         string
	Email          string
	Password       string
	FullName       string
	JobTitle       string
	Bio            string
	ShortBio       string
	SocialLinks    *domain.SocialLinks
	ProfilePicture *FileUpload
	Resume         *FileUpload
}

// AuthService implements registration, login and profile management.
type AuthService interface {
	// Register creates the owner identity. It is a first-use bootstrap: any
	// existing identity makes it fail with domain.ErrUserExists.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns a fresh token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// PublicProfile returns the admin profile served to the portfolio site.
	PublicProfile(ctx context.Context) (*domain.User, error)
	// UpdateProfile patches fields and replaces hosted assets, returning the
	// updated user and a re-issued token.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, string, error)
}
