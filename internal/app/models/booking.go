package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the persisted appointment document on the backend side.
type Booking struct {
	ID           string          `json:"id" bson:"_id"`
	ConsultantID string          `json:"consultant_id" bson:"consultant_id"`
	StartAt      time.Time       `json:"start_at" bson:"start_at"`
	EndAt        time.Time       `json:"end_at" bson:"end_at"`
	Title        string          `json:"title" bson:"title"`
	Notes        string          `json:"notes,omitempty" bson:"notes,omitempty"`
	Mode         string          `json:"mode" bson:"mode"`
	Price        decimal.Decimal `json:"price" bson:"price"`
	Location     string          `json:"location,omitempty" bson:"location,omitempty"`
	Status       BookingStatus   `json:"status" bson:"status"`
	TimeModel    `bson:",inline"`
}

// SlotClaim is the row whose unique (consultant_id, start_at) index makes the
// conflict check atomic. Claims are deleted when a booking is cancelled, which
// frees the slot for re-booking.
type SlotClaim struct {
	BookingID    string    `bson:"booking_id"`
	ConsultantID string    `bson:"consultant_id"`
	StartAt      time.Time `bson:"start_at"`
}
