package domain

import "time"

// Subscriber is a newsletter mailing-list entry. The unsubscribe token is the
// only credential required to remove it.
type Subscriber struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	UnsubscribeToken string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}
