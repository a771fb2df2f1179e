package entities

import "time"

// Review is a traveler's rating of an accommodation. IsFemaleReview is
// derived from the reviewer's gender at creation time and never changes.
type Review struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	AccommodationID int64     `json:"accommodation_id" db:"accommodation_id"`
	Rating          int       `json:"rating" db:"rating"`
	SafetyRating    int       `json:"safety_rating" db:"safety_rating"`
	ReviewText      string    `json:"review_text" db:"review_text"`
	IsFemaleReview  bool      `json:"is_female_review" db:"is_female_review"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	// Joined columns, present on list reads only.
	ReviewerName      string `json:"full_name,omitempty" db:"full_name"`
	ReviewerGender    string `json:"gender,omitempty" db:"gender"`
	AccommodationName string `json:"accommodation_name,omitempty" db:"accommodation_name"`
	City              string `json:"city,omitempty" db:"city"`
}
