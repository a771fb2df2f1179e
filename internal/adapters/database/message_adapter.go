package database

import (
	"context"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	"github.com/travelease/backend/internal/infrastructure/db"
	apperrors "github.com/travelease/backend/pkg/errors"
)

// MessageAdapter implements direct message persistence over the active engine.
type MessageAdapter struct {
	client *db.Client
}

// NewMessageAdapter creates a new message adapter
func NewMessageAdapter(client *db.Client) repositories.MessageRepository {
	return &MessageAdapter{client: client}
}

// Create inserts a new message and sets its generated id
func (a *MessageAdapter) Create(ctx context.Context, message *entities.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, message) VALUES (?, ?, ?)`

	id, err := a.client.Insert(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Body,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to create message", err)
	}

	message.ID = id
	return nil
}
