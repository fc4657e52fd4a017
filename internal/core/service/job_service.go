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

// JobService implements the private job-application tracker.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.JobInput) (*domain.Job, error) {
	if strings.TrimSpace(input.Company) == "" || strings.TrimSpace(input.Position) == "" {
		return nil, fmt.Errorf("%w: company and position are required", domain.ErrValidation)
	}

	status := domain.JobApplied
	if input.Status != "" {
		status = domain.JobStatus(input.Status)
		if !domain.ValidJobStatus(status) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidJobStatus, input.Status)
		}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Job{
		Company:     strings.TrimSpace(input.Company),
		Position:    strings.TrimSpace(input.Position),
		Status:      status,
		AppliedDate: now,
		Link:        input.Link,
		Notes:       input.Notes,
		ResumeUsed:  input.ResumeUsed,
		Tags:        domain.NormalizeTags(input.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("company", created.Company).Str("position", created.Position).Msg("job application tracked")
	return created, nil
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.FindAll(ctx)
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id string, input ports.JobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		status := domain.JobStatus(input.Status)
		if !domain.ValidJobStatus(status) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidJobStatus, input.Status)
		}
		job.Status = status
	}
	if c := strings.TrimSpace(input.Company); c != "" {
		job.Company = c
	}
	if p := strings.TrimSpace(input.Position); p != "" {
		job.Position = p
	}
	if input.Link != "" {
		job.Link = input.Link
	}
	if input.Notes != "" {
		job.Notes = input.Notes
	}
	if input.ResumeUsed != "" {
		job.ResumeUsed = input.ResumeUsed
	}
	if len(input.Tags) > 0 {
		job.Tags = domain.NormalizeTags(input.Tags)
	}
	job.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, job)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
