package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

type stubSkillRepo struct {
	skills map[string]*domain.Skill
	nextID int
}

func newStubSkillRepo() *stubSkillRepo {
	return &stubSkillRepo{skills: make(map[string]*domain.Skill)}
}

func (r *stubSkillRepo) Create(_ context.Context, s *domain.Skill) (*domain.Skill, error) {
	for _, existing := range r.skills {
		if existing.Name == s.Name {
			return nil, domain.ErrSkillExists
		}
	}
	copy := *s
	r.nextID++
	copy.ID = "skill_" + strconv.Itoa(r.nextID)
	r.skills[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubSkillRepo) FindAll(_ context.Context) ([]domain.Skill, error) {
	out := make([]domain.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSkillRepo) FindByName(_ context.Context, name string) (*domain.Skill, error) {
	for _, s := range r.skills {
		if s.Name == name {
			copy := *s
			return &copy, nil
		}
	}
	return nil, domain.ErrSkillNotFound
}

func (r *stubSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.skills[id]; !ok {
		return domain.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

func TestSkillService_Add_NormalizesName(t *testing.T) {
	svc := NewSkillService(newStubSkillRepo(), zerolog.Nop())

	skill, err := svc.Add(context.Background(), ports.AddSkillInput{Name: "  golang "})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if skill.Name != "GOLANG" {
		t.Fatalf("expected upper-cased name, got %s", skill.Name)
	}
	if skill.Icon != domain.DefaultSkillIcon {
		t.Fatalf("expected default icon, got %s", skill.Icon)
	}
	if skill.Category != domain.DefaultSkillCategory {
		t.Fatalf("expected default category, got %s", skill.Category)
	}
}

func TestSkillService_Add_CaseInsensitiveDuplicate(t *testing.T) {
	svc := NewSkillService(newStubSkillRepo(), zerolog.Nop())

	if _, err := svc.Add(context.Background(), ports.AddSkillInput{Name: "React"}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add(context.Background(), ports.AddSkillInput{Name: "rEaCt"}); err != domain.ErrSkillExists {
		t.Fatalf("expected ErrSkillExists, got %v", err)
	}
}

func TestSkillService_Add_Validation(t *testing.T) {
	svc := NewSkillService(newStubSkillRepo(), zerolog.Nop())

	if _, err := svc.Add(context.Background(), ports.AddSkillInput{Name: "   "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSkillService_Delete(t *testing.T) {
	repo := newStubSkillRepo()
	svc := NewSkillService(repo, zerolog.Nop())
	skill, err := svc.Add(context.Background(), ports.AddSkillInput{Name: "Go"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), skill.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), skill.ID); err != domain.ErrSkillNotFound {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}
