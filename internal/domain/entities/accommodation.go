package entities

import "time"

// Accommodation types accepted by search and at creation
const (
	AccommodationHostel     = "hostel"
	AccommodationHotel      = "hotel"
	AccommodationGuesthouse = "guesthouse"
	AccommodationHomestay   = "homestay"
)

// Accommodation is a bookable stay listed for travelers.
//
// SafetyRating, Verified and AverageRating are response decorations filled
// in by the application layer, not stored columns.
type Accommodation struct {
	ID            int64                  `json:"id" db:"id"`
	Name          string                 `json:"name" db:"name"`
	Description   string                 `json:"description" db:"description"`
	City          string                 `json:"city" db:"city"`
	Address       string                 `json:"address" db:"address"`
	Latitude      *float64               `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64               `json:"longitude,omitempty" db:"longitude"`
	PricePerNight int                    `json:"price_per_night" db:"price_per_night"`
	Type          string                 `json:"accommodation_type" db:"accommodation_type"`
	Amenities     []string               `json:"amenities" db:"-"`
	Photos        []string               `json:"photos" db:"-"`
	ContactInfo   map[string]interface{} `json:"contact_info" db:"-"`
	IsActive      bool                   `json:"is_active" db:"is_active"`
	CreatedAt     time.Time              `json:"created_at" db:"created_at"`

	SafetyRating  int     `json:"safety_rating" db:"-"`
	Verified      bool    `json:"verified" db:"-"`
	AverageRating float64 `json:"average_rating" db:"-"`
}
