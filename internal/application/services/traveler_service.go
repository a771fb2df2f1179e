package services

import (
	"context"
	"time"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	apperrors "github.com/travelease/backend/pkg/errors"
)

const travelDateLayout = "2006-01-02"

// ConnectInput carries a validated traveler connection payload.
type ConnectInput struct {
	AccommodationID int64
	TravelDates     entities.TravelDates
	Message         string
}

// SendMessageInput carries a validated direct message payload.
type SendMessageInput struct {
	ReceiverID int64
	Body       string
}

// TravelerService handles traveler connections and direct messages.
type TravelerService struct {
	travelers repositories.TravelerRepository
	messages  repositories.MessageRepository
}

// NewTravelerService creates a new traveler service
func NewTravelerService(travelers repositories.TravelerRepository, messages repositories.MessageRepository) *TravelerService {
	return &TravelerService{
		travelers: travelers,
		messages:  messages,
	}
}

// Connect announces the user's stay at an accommodation
func (s *TravelerService) Connect(ctx context.Context, userID int64, input ConnectInput) (*entities.TravelerConnection, error) {
	if !validTravelDate(input.TravelDates.Checkin) || !validTravelDate(input.TravelDates.Checkout) {
		return nil, apperrors.NewValidationError("travel_dates must contain valid checkin and checkout dates")
	}

	connection := &entities.TravelerConnection{
		UserID:              userID,
		AccommodationID:     input.AccommodationID,
		TravelDates:         input.TravelDates,
		IsLookingForCompany: true,
		Message:             input.Message,
	}

	if err := s.travelers.CreateConnection(ctx, connection); err != nil {
		return nil, err
	}
	return connection, nil
}

// ListForAccommodation lists travelers looking for company at an
// accommodation. The date filter applies only when both bounds are given;
// a lone checkin or checkout is ignored, matching the search form behavior.
func (s *TravelerService) ListForAccommodation(ctx context.Context, accommodationID int64, checkin, checkout string) ([]*entities.TravelerConnection, error) {
	if checkin != "" || checkout != "" {
		if !validTravelDate(checkin) || !validTravelDate(checkout) {
			checkin, checkout = "", ""
		}
	}
	return s.travelers.ListByAccommodation(ctx, accommodationID, checkin, checkout)
}

// SendMessage creates a direct message from the authenticated user
func (s *TravelerService) SendMessage(ctx context.Context, senderID int64, input SendMessageInput) (*entities.Message, error) {
	message := &entities.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Body:       input.Body,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func validTravelDate(value string) bool {
	_, err := time.Parse(travelDateLayout, value)
	return err == nil
}
