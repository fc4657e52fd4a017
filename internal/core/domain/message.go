package domain

import "time"

// MessageStatus is the lifecycle state of a contact message.
type MessageStatus string

const (
	MessageUnread   MessageStatus = "unread"
	MessageRead     MessageStatus = "read"
	MessageArchived MessageStatus = "archived"
	MessageDeleted  MessageStatus = "deleted"
)

// ValidMessageStatus reports whether s is one of the enumerated states.
func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageUnread, MessageRead, MessageArchived, MessageDeleted:
		return true
	}
	return false
}

// Message is a contact-form submission. New messages start unread; retrieving
// a single unread message transitions it to read.
type Message struct {
	ID          string        `json:"id"`
	SenderName  string        `json:"sender_name"`
	SenderEmail string        `json:"sender_email"`
	Subject     string        `json:"subject"`
	Body        string        `json:"body"`
	Status      MessageStatus `json:"status"`
	ReceivedAt  time.Time     `json:"received_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
