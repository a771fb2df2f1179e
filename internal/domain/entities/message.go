package entities

import "time"

// Message is a direct message between two travelers.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	Body       string    `json:"message" db:"message"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
