package responses

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBooking struct {
	ID           string    `json:"id"`
	ConsultantID string    `json:"consultant_id"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Status       string    `json:"status"`
}

type Booking struct {
	ID           string          `json:"id"`
	ConsultantID string          `json:"consultant_id"`
	StartAt      time.Time       `json:"start_at"`
	EndAt        time.Time       `json:"end_at"`
	Title        string          `json:"title"`
	Notes        string          `json:"notes,omitempty"`
	Mode         string          `json:"mode"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location,omitempty"`
	Status       string          `json:"status"`
}

type Consultant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode string `json:"mode"`
}
