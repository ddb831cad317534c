package contracts

import (
	"context"

	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*responses.CreateBooking, error)
	FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, request *requests.UpdateBookingStatusRequest) (*responses.Booking, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
	ReleaseClaim(ctx context.Context, bookingID string) error
}

// BookingAPIClient is the consumer side of the booking backend: one create
// call per user intent, plus the counterparty's status update.
type BookingAPIClient interface {
	CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*models.BookingOutcome, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
}
