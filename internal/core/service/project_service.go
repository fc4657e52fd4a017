package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

const projectImageFolder = "portfolio_projects"

// ProjectService implements project CRUD with the ownership gate and
// hosted-image lifecycle.
type ProjectService struct {
	repo   ports.ProjectRepository
	media  ports.MediaStore
	images ports.ImageProcessor
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, media ports.MediaStore, images ports.ImageProcessor, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, media: media, images: images, logger: logger}
}

// Create validates required fields, normalizes tags and uploads the image
// when one is supplied. All checks run before any write.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.OwnerID == "" {
		return nil, domain.ErrForbidden
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultProjectCategory
	}

	imageURL := domain.DefaultProjectImageURL
	imageID := ""
	if input.Image != nil {
		asset, err := s.uploadImage(ctx, *input.Image)
		if err != nil {
			return nil, err
		}
		imageURL = asset.URL
		imageID = asset.PublicID
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:       strings.TrimSpace(input.Title),
		Tags:        domain.NormalizeTags(input.Tags),
		Category:    category,
		Description: input.Description,
		ImageURL:    imageURL,
		ImageID:     imageID,
		LiveURL:     strings.TrimSpace(input.LiveURL),
		RepoURL:     strings.TrimSpace(input.RepoURL),
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner_id", created.OwnerID).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Update patches non-empty fields after the ownership check. A supplied image
// replaces the hosted asset: the new object is uploaded first, and the prior
// one removed exactly once after the upload succeeds.
func (s *ProjectService) Update(ctx context.Context, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(input.Caller.UserID, input.Caller.IsAdmin, project.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if input.Image != nil {
		data, contentType, err := s.images.Normalize(input.Image.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
		}
		file := ports.FileUpload{Name: input.Image.Name, ContentType: contentType, Data: data}
		asset, err := s.media.Replace(ctx, project.ImageID, projectImageFolder, file)
		if err != nil {
			return nil, err
		}
		project.ImageURL = asset.URL
		project.ImageID = asset.PublicID
	}

	if t := strings.TrimSpace(input.Title); t != "" {
		project.Title = t
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	if len(input.Tags) > 0 {
		project.Tags = domain.NormalizeTags(input.Tags)
	}
	if c := strings.TrimSpace(input.Category); c != "" {
		project.Category = c
	}
	if input.LiveURL != "" {
		project.LiveURL = strings.TrimSpace(input.LiveURL)
	}
	if input.RepoURL != "" {
		project.RepoURL = strings.TrimSpace(input.RepoURL)
	}
	project.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", input.ID).Msg("failed to update project")
		return nil, err
	}
	return updated, nil
}

// Delete removes the hosted image first, then the record. An authorization
// failure leaves both the record and the asset untouched.
func (s *ProjectService) Delete(ctx context.Context, id string, caller domain.AuthClaims) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(caller.UserID, caller.IsAdmin, project.OwnerID) {
		return domain.ErrForbidden
	}

	if project.ImageID != "" {
		if err := s.media.Delete(ctx, project.ImageID); err != nil {
			s.logger.Error().Err(err).Str("public_id", project.ImageID).Msg("failed to delete hosted image")
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (s *ProjectService) uploadImage(ctx context.Context, file ports.FileUpload) (domain.HostedAsset, error) {
	data, contentType, err := s.images.Normalize(file.Data)
	if err != nil {
		return domain.HostedAsset{}, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	asset, err := s.media.Upload(ctx, projectImageFolder, ports.FileUpload{Name: file.Name, ContentType: contentType, Data: data})
	if err != nil {
		return domain.HostedAsset{}, err
	}
	return asset, nil
}
