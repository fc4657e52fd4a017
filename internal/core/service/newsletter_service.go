package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// NewsletterService implements the mailing-list subscribe/unsubscribe flow.
type NewsletterService struct {
	repo        ports.SubscriberRepository
	mailer      ports.Mailer
	frontendURL string
	logger      zerolog.Logger
}

func NewNewsletterService(repo ports.SubscriberRepository, mailer ports.Mailer, frontendURL string, logger zerolog.Logger) *NewsletterService {
	return &NewsletterService{repo: repo, mailer: mailer, frontendURL: frontendURL, logger: logger}
}

// Subscribe stores a new subscriber with a random unsubscribe token and sends
// the confirmation email. A failed send does not roll back the subscription;
// it is logged and the subscriber keeps their unsubscribe link in any later
// mail.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrSubscriberExists
	} else if err != nil && !errors.Is(err, domain.ErrSubscriberNotFound) {
		return nil, err
	}

	token, err := unsubscribeToken()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Subscriber{
		Email:            email,
		UnsubscribeToken: token,
		CreatedAt:        time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	unsubscribeURL := fmt.Sprintf("%s/unsubscribe?token=%s", strings.TrimRight(s.frontendURL, "/"), token)
	if err := s.mailer.SendSubscriptionConfirmation(ctx, email, unsubscribeURL); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("confirmation email failed")
	}

	s.logger.Info().Str("email", email).Msg("newsletter subscription created")
	return created, nil
}

// Unsubscribe removes the subscriber matching the presented token. The token,
// not the subscriber id, is the credential.
func (s *NewsletterService) Unsubscribe(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrSubscriberNotFound
	}
	subscriber, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, subscriber.ID); err != nil {
		return err
	}
	s.logger.Info().Str("email", subscriber.Email).Msg("newsletter subscription removed")
	return nil
}

func unsubscribeToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
