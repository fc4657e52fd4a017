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

// MessageService implements the contact inbox.
type MessageService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

// Send stores a contact-form submission. All four fields are required and
// checked before any write.
func (s *MessageService) Send(ctx context.Context, input ports.SendMessageInput) (*domain.Message, error) {
	if input.SenderName == "" || input.SenderEmail == "" || input.Subject == "" || input.Body == "" {
		return nil, fmt.Errorf("%w: sender name, sender email, subject and message body are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	message := &domain.Message{
		SenderName:  strings.TrimSpace(input.SenderName),
		SenderEmail: strings.ToLower(strings.TrimSpace(input.SenderEmail)),
		Subject:     strings.TrimSpace(input.Subject),
		Body:        input.Body,
		Status:      domain.MessageUnread,
		ReceivedAt:  now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store message")
		return nil, err
	}
	s.logger.Info().Str("message_id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	return s.repo.FindAll(ctx)
}

// Get retrieves a single message. An unread message transitions to read as an
// observable side effect of the retrieval.
func (s *MessageService) Get(ctx context.Context, id string) (*domain.Message, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message.Status == domain.MessageUnread {
		return s.repo.UpdateStatus(ctx, id, domain.MessageRead)
	}
	return message, nil
}

// UpdateStatus moves a message within the enumerated status set. Values
// outside the set are rejected before any write.
func (s *MessageService) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.Message, error) {
	if !domain.ValidMessageStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMessageStatus, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
