package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

type stubSubscriberRepo struct {
	subscribers map[string]*domain.Subscriber
	nextID      int
}

func newStubSubscriberRepo() *stubSubscriberRepo {
	return &stubSubscriberRepo{subscribers: make(map[string]*domain.Subscriber)}
}

func (r *stubSubscriberRepo) Create(_ context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	for _, existing := range r.subscribers {
		if existing.Email == s.Email {
			return nil, domain.ErrSubscriberExists
		}
	}
	copy := *s
	r.nextID++
	copy.ID = "sub_" + strconv.Itoa(r.nextID)
	r.subscribers[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubSubscriberRepo) FindByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	for _, s := range r.subscribers {
		if s.Email == email {
			copy := *s
			return &copy, nil
		}
	}
	return nil, domain.ErrSubscriberNotFound
}

func (r *stubSubscriberRepo) FindByToken(_ context.Context, token string) (*domain.Subscriber, error) {
	for _, s := range r.subscribers {
		if s.UnsubscribeToken == token {
			copy := *s
			return &copy, nil
		}
	}
	return nil, domain.ErrSubscriberNotFound
}

func (r *stubSubscriberRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.subscribers[id]; !ok {
		return domain.ErrSubscriberNotFound
	}
	delete(r.subscribers, id)
	return nil
}

type stubMailer struct {
	sent []string // unsubscribe URLs handed to the mailer
	fail bool
}

func (m *stubMailer) SendSubscriptionConfirmation(_ context.Context, to, unsubscribeURL string) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.sent = append(m.sent, unsubscribeURL)
	return nil
}

func TestNewsletterService_Subscribe(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewNewsletterService(newStubSubscriberRepo(), mailer, "https://site.test/", zerolog.Nop())

	sub, err := svc.Subscribe(context.Background(), " Reader@Example.com ")
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Fatalf("expected normalized email, got %s", sub.Email)
	}
	if len(sub.UnsubscribeToken) != 64 {
		t.Fatalf("expected 32-byte hex token, got %d chars", len(sub.UnsubscribeToken))
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one confirmation email, got %d", len(mailer.sent))
	}
	want := "https://site.test/unsubscribe?token=" + sub.UnsubscribeToken
	if mailer.sent[0] != want {
		t.Fatalf("expected unsubscribe url %s, got %s", want, mailer.sent[0])
	}
}

func TestNewsletterService_Subscribe_Duplicate(t *testing.T) {
	svc := NewNewsletterService(newStubSubscriberRepo(), &stubMailer{}, "https://site.test", zerolog.Nop())

	if _, err := svc.Subscribe(context.Background(), "reader@example.com"); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if _, err := svc.Subscribe(context.Background(), "READER@example.com"); err != domain.ErrSubscriberExists {
		t.Fatalf("expected ErrSubscriberExists, got %v", err)
	}
}

func TestNewsletterService_Subscribe_MailFailureKeepsSubscription(t *testing.T) {
	repo := newStubSubscriberRepo()
	svc := NewNewsletterService(repo, &stubMailer{fail: true}, "https://site.test", zerolog.Nop())

	sub, err := svc.Subscribe(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("Subscribe must succeed despite mail failure, got %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), sub.Email); err != nil {
		t.Fatalf("subscription not persisted: %v", err)
	}
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	repo := newStubSubscriberRepo()
	svc := NewNewsletterService(repo, &stubMailer{}, "https://site.test", zerolog.Nop())
	sub, err := svc.Subscribe(context.Background(), "reader@example.com")
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	if err := svc.Unsubscribe(context.Background(), sub.UnsubscribeToken); err != nil {
		t.Fatalf("Unsubscribe returned error: %v", err)
	}
	if len(repo.subscribers) != 0 {
		t.Fatalf("expected subscriber removed")
	}

	if err := svc.Unsubscribe(context.Background(), strings.Repeat("0", 64)); err != domain.ErrSubscriberNotFound {
		t.Fatalf("expected ErrSubscriberNotFound for unknown token, got %v", err)
	}
	if err := svc.Unsubscribe(context.Background(), ""); err != domain.ErrSubscriberNotFound {
		t.Fatalf("expected ErrSubscriberNotFound for empty token, got %v", err)
	}
}
