package entities

import "time"

// TravelDates is the JSON payload stored on a traveler connection.
type TravelDates struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// TravelerConnection announces a traveler's stay at an accommodation so
// others can find company for overlapping dates.
type TravelerConnection struct {
	ID                  int64       `json:"id" db:"id"`
	UserID              int64       `json:"user_id" db:"user_id"`
	AccommodationID     int64       `json:"accommodation_id" db:"accommodation_id"`
	TravelDates         TravelDates `json:"travel_dates" db:"-"`
	IsLookingForCompany bool        `json:"is_looking_for_company" db:"is_looking_for_company"`
	Message             string      `json:"message" db:"message"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`

	// Joined columns, present on list reads only.
	FullName          string   `json:"full_name,omitempty" db:"full_name"`
	Gender            string   `json:"gender,omitempty" db:"gender"`
	Age               int      `json:"age,omitempty" db:"age"`
	Interests         []string `json:"interests,omitempty" db:"-"`
	AccommodationName string   `json:"accommodation_name,omitempty" db:"accommodation_name"`
	City              string   `json:"city,omitempty" db:"city"`
}
