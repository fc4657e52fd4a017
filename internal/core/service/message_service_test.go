package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

type stubMessageRepo struct {
	messages map[string]*domain.Message
	nextID   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{messages: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	copy := *m
	r.nextID++
	copy.ID = "msg_" + strconv.Itoa(r.nextID)
	r.messages[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubMessageRepo) FindAll(_ context.Context) ([]domain.Message, error) {
	out := make([]domain.Message, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	if m, ok := r.messages[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, domain.ErrMessageNotFound
}

func (r *stubMessageRepo) UpdateStatus(_ context.Context, id string, status domain.MessageStatus) (*domain.Message, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	m.Status = status
	m.UpdatedAt = time.Now().UTC()
	copy := *m
	return &copy, nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.messages[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}

func sendInput() ports.SendMessageInput {
	return ports.SendMessageInput{
		SenderName:  "Visitor",
		SenderEmail: "Visitor@Example.com",
		Subject:     "Hello",
		Body:        "Nice site",
	}
}

func TestMessageService_Send(t *testing.T) {
	svc := NewMessageService(newStubMessageRepo(), zerolog.Nop())

	msg, err := svc.Send(context.Background(), sendInput())
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if msg.Status != domain.MessageUnread {
		t.Fatalf("new message must start unread, got %s", msg.Status)
	}
	if msg.SenderEmail != "visitor@example.com" {
		t.Fatalf("expected lower-cased sender email, got %s", msg.SenderEmail)
	}
}

func TestMessageService_Send_Validation(t *testing.T) {
	svc := NewMessageService(newStubMessageRepo(), zerolog.Nop())

	input := sendInput()
	input.Subject = ""
	if _, err := svc.Send(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMessageService_Get_MarksRead(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())
	msg, err := svc.Send(context.Background(), sendInput())
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Status != domain.MessageRead {
		t.Fatalf("expected unread message to transition to read, got %s", got.Status)
	}

	// Later retrievals and non-unread states are untouched.
	if _, err := svc.UpdateStatus(context.Background(), msg.ID, domain.MessageArchived); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	got, err = svc.Get(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Status != domain.MessageArchived {
		t.Fatalf("archived message must stay archived, got %s", got.Status)
	}
}

func TestMessageService_UpdateStatus_RejectsUnknown(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())
	msg, err := svc.Send(context.Background(), sendInput())
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), msg.ID, "starred"); !errors.Is(err, domain.ErrInvalidMessageStatus) {
		t.Fatalf("expected ErrInvalidMessageStatus, got %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), msg.ID)
	if stored.Status != domain.MessageUnread {
		t.Fatalf("rejected status must not be written, got %s", stored.Status)
	}
}

func TestMessageService_Delete(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewMessageService(repo, zerolog.Nop())
	msg, err := svc.Send(context.Background(), sendInput())
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), msg.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), msg.ID); err != domain.ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
