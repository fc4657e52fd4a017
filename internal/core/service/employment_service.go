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

// EmploymentService implements the work-history list.
type EmploymentService struct {
	repo   ports.EmploymentRepository
	logger zerolog.Logger
}

func NewEmploymentService(repo ports.EmploymentRepository, logger zerolog.Logger) *EmploymentService {
	return &EmploymentService{repo: repo, logger: logger}
}

// Create validates required fields, applies per-word capitalization to title
// and company, and falls back to the location/end-date defaults.
func (s *EmploymentService) Create(ctx context.Context, input ports.EmploymentInput) (*domain.Employment, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Company) == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.StartDate) == "" {
		return nil, fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	if len(input.Description) == 0 {
		return nil, fmt.Errorf("%w: description must be a non-empty list", domain.ErrValidation)
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = domain.DefaultEmploymentLocation
	}
	endDate := strings.TrimSpace(input.EndDate)
	if endDate == "" {
		endDate = domain.DefaultEmploymentEndDate
	}

	created, err := s.repo.Create(ctx, &domain.Employment{
		Title:       domain.CapitalizeWords(strings.TrimSpace(input.Title)),
		Company:     domain.CapitalizeWords(strings.TrimSpace(input.Company)),
		Location:    location,
		StartDate:   strings.TrimSpace(input.StartDate),
		EndDate:     endDate,
		Description: input.Description,
		CreatedOn:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("title", created.Title).Str("company", created.Company).Msg("work experience added")
	return created, nil
}

func (s *EmploymentService) List(ctx context.Context) ([]domain.Employment, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmploymentService) Get(ctx context.Context, id string) (*domain.Employment, error) {
	return s.repo.FindByID(ctx, id)
}

// Update patches only non-empty incoming fields; capitalization is reapplied
// to a changed title or company.
func (s *EmploymentService) Update(ctx context.Context, id string, input ports.EmploymentInput) (*domain.Employment, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t := strings.TrimSpace(input.Title); t != "" {
		entry.Title = domain.CapitalizeWords(t)
	}
	if c := strings.TrimSpace(input.Company); c != "" {
		entry.Company = domain.CapitalizeWords(c)
	}
	if l := strings.TrimSpace(input.Location); l != "" {
		entry.Location = l
	}
	if sd := strings.TrimSpace(input.StartDate); sd != "" {
		entry.StartDate = sd
	}
	if ed := strings.TrimSpace(input.EndDate); ed != "" {
		entry.EndDate = ed
	}
	if len(input.Description) > 0 {
		entry.Description = input.Description
	}

	return s.repo.Update(ctx, entry)
}

func (s *EmploymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
