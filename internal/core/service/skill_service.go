package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// SkillService implements the skills list.
type SkillService struct {
	repo   ports.SkillRepository
	logger zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, logger zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, logger: logger}
}

// Add stores a new skill under its normalized (upper-cased) name. Uniqueness
// is case-insensitive on the normalized form; the application pre-check is
// advisory and the collection's unique index is the real guard.
func (s *SkillService) Add(ctx context.Context, input ports.AddSkillInput) (*domain.Skill, error) {
	name := domain.NormalizeSkillName(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: skill name is required", domain.ErrValidation)
	}

	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrSkillExists
	} else if err != nil && !errors.Is(err, domain.ErrSkillNotFound) {
		return nil, err
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = domain.DefaultSkillIcon
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultSkillCategory
	}

	created, err := s.repo.Create(ctx, &domain.Skill{
		Name:      name,
		Icon:      icon,
		Category:  category,
		CreatedOn: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("skill", created.Name).Msg("skill added")
	return created, nil
}

func (s *SkillService) List(ctx context.Context) ([]domain.Skill, error) {
	return s.repo.FindAll(ctx)
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: skill id is required", domain.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}
