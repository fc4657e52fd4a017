package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

const (
	profilePictureFolder = "user_profiles"
	resumeFolder         = "user_resumes"
)

// AuthService implements registration, login and profile management.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	media  ports.MediaStore
	images ports.ImageProcessor
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, media ports.MediaStore, images ports.ImageProcessor, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, media: media, images: images, logger: logger}
}

// Register creates the owner identity and returns it with a fresh token.
// First-use bootstrap: when any identity already exists the call fails with
// domain.ErrUserExists and nothing is written.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	if input.FullName == "" || input.JobTitle == "" || input.Bio == "" || input.ShortBio == "" {
		return nil, "", fmt.Errorf("%w: full name, job title, bio and short bio are required", domain.ErrValidation)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:             input.Email,
		PasswordHash:      string(hash),
		IsAdmin:           true,
		FullName:          input.FullName,
		JobTitle:          input.JobTitle,
		Bio:               input.Bio,
		ShortBio:          input.ShortBio,
		ProfilePictureURL: domain.DefaultProfilePictureURL,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if input.SocialLinks != nil {
		user.SocialLinks = *input.SocialLinks
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", created.Email).Msg("owner account registered")
	return created, token, nil
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) PublicProfile(ctx context.Context) (*domain.User, error) {
	return s.repo.FindAdmin(ctx)
}

// UpdateProfile patches non-empty fields and replaces the hosted profile
// picture and resume when new files are supplied. The new object is uploaded
// before the old one is removed, so a failed upload leaves the stored
// reference unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, string, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, "", err
	}

	if input.ProfilePicture != nil {
		data, contentType, err := s.images.Normalize(input.ProfilePicture.Data)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", domain.ErrValidation, err)
		}
		file := ports.FileUpload{Name: input.ProfilePicture.Name, ContentType: contentType, Data: data}
		asset, err := s.media.Replace(ctx, user.ProfilePictureID, profilePictureFolder, file)
		if err != nil {
			s.logger.Error().Err(err).Msg("profile picture upload failed")
			return nil, "", err
		}
		user.ProfilePictureURL = asset.URL
		user.ProfilePictureID = asset.PublicID
	}

	if input.Resume != nil {
		asset, err := s.media.Replace(ctx, user.ResumeID, resumeFolder, *input.Resume)
		if err != nil {
			s.logger.Error().Err(err).Msg("resume upload failed")
			return nil, "", err
		}
		user.ResumeURL = asset.URL
		user.ResumeID = asset.PublicID
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = string(hash)
	}
	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.JobTitle != "" {
		user.JobTitle = input.JobTitle
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.ShortBio != "" {
		user.ShortBio = input.ShortBio
	}
	if input.SocialLinks != nil {
		user.SocialLinks = *input.SocialLinks
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(updated)
	if err != nil {
		return nil, "", err
	}
	return updated, token, nil
}
