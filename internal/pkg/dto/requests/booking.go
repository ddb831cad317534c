package requests

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the wire-ready projection of a valid draft. It is
// derived by the confirmation coordinator and validated again server-side.
type CreateBookingRequest struct {
	ConsultantID string          `json:"consultant_id" validate:"required"`
	StartAt      time.Time       `json:"start_at" validate:"required"`
	EndAt        time.Time       `json:"end_at" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Notes        string          `json:"notes"`
	Mode         string          `json:"mode" validate:"required,session_mode"`
	Price        decimal.Decimal `json:"price"`
	Location     string          `json:"location"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}
