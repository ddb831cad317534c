package contracts

import "context"

type BookingEvent struct {
	Kind         string `json:"kind"`
	BookingID    string `json:"booking_id"`
	ConsultantID string `json:"consultant_id"`
	StartAt      string `json:"start_at"`
}

type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}
