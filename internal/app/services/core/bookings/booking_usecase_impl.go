package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/dto/responses"
	"fitbook-service/internal/pkg/exceptions"
	"fitbook-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	bookingRepo    contracts.BookingRepository
	consultantRepo contracts.ConsultantRepository
	locker         contracts.LockerService
	publisher      contracts.BookingEventPublisher
	log            *zap.Logger
}

func NewBookingUsecase(
	bookingRepo contracts.BookingRepository,
	consultantRepo contracts.ConsultantRepository,
	locker contracts.LockerService,
	publisher contracts.BookingEventPublisher,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			bookingRepo:    bookingRepo,
			consultantRepo: consultantRepo,
			locker:         locker,
			publisher:      publisher,
			log:            logger,
		}
	})
	return bookingUsecaseInstance
}

// CreateBooking books one slot. The redis lock narrows the race window for a
// retried request; the unique slot-claim index is the actual guarantee that
// a slot is sold at most once.
func (u *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*responses.CreateBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, request.ConsultantID),
		zap.Time(constvars.LoggingStartAtKey, request.StartAt),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.EndAt.After(request.StartAt) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("end_at must be after start_at"))
	}
	if request.Price.IsNegative() {
		return nil, exceptions.ErrInvalidPrice(nil)
	}

	if _, err := u.consultantRepo.FindByID(ctx, request.ConsultantID); err != nil {
		u.log.Error("bookingUsecase.CreateBooking error finding consultant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultantIDKey, request.ConsultantID),
			zap.Error(err),
		)
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.ConsultantID, request.StartAt.UTC().Format(time.RFC3339))
	acquired, lockValue, err := u.locker.TryLock(ctx, lockKey, constvars.BookingLockExpirationInSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingSlotTaken(fmt.Errorf("slot lock is held by another request"))
	}
	defer func() {
		if unlockErr := u.locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			u.log.Warn("bookingUsecase.CreateBooking failed to release slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	booking := &models.Booking{
		ID:           uuid.NewString(),
		ConsultantID: request.ConsultantID,
		StartAt:      request.StartAt.UTC(),
		EndAt:        request.EndAt.UTC(),
		Title:        request.Title,
		Notes:        request.Notes,
		Mode:         request.Mode,
		Price:        request.Price,
		Location:     request.Location,
		Status:       models.BookingStatusConfirmed,
	}
	booking.SetCreatedAtUpdatedAt()

	if err := u.bookingRepo.Insert(ctx, booking); err != nil {
		u.log.Error("bookingUsecase.CreateBooking error inserting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// The booking is durable at this point; a failed event publish is logged
	// and swallowed rather than undoing the booking.
	event := contracts.BookingEvent{
		Kind:         constvars.BookingEventConfirmed,
		BookingID:    booking.ID,
		ConsultantID: booking.ConsultantID,
		StartAt:      booking.StartAt.Format(time.RFC3339),
	}
	if err := u.publisher.PublishBookingEvent(ctx, event); err != nil {
		u.log.Error("bookingUsecase.CreateBooking error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}

	u.log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)
	return &responses.CreateBooking{
		ID:           booking.ID,
		ConsultantID: booking.ConsultantID,
		StartAt:      booking.StartAt,
		EndAt:        booking.EndAt,
		Status:       string(booking.Status),
	}, nil
}

func (u *bookingUsecase) FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.log.Info("bookingUsecase.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return buildBookingResponse(booking), nil
}

// UpdateBookingStatus flips a booking between confirmed and cancelled.
// Cancelling releases the slot claim so the time becomes bookable again.
func (u *bookingUsecase) UpdateBookingStatus(ctx context.Context, bookingID string, request *requests.UpdateBookingStatusRequest) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.log.Info("bookingUsecase.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInvalidBookingStatus(err)
	}

	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	newStatus := models.BookingStatus(request.Status)
	if booking.Status == models.BookingStatusCancelled && newStatus == models.BookingStatusConfirmed {
		return nil, exceptions.ErrInvalidBookingStatus(fmt.Errorf("cancelled bookings cannot be confirmed again"))
	}

	if err := u.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	if newStatus == models.BookingStatusCancelled {
		if err := u.bookingRepo.ReleaseClaim(ctx, bookingID); err != nil {
			u.log.Error("bookingUsecase.UpdateBookingStatus error releasing slot claim",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, bookingID),
				zap.Error(err),
			)
			return nil, err
		}

		event := contracts.BookingEvent{
			Kind:         constvars.BookingEventCancelled,
			BookingID:    booking.ID,
			ConsultantID: booking.ConsultantID,
			StartAt:      booking.StartAt.Format(time.RFC3339),
		}
		if err := u.publisher.PublishBookingEvent(ctx, event); err != nil {
			u.log.Error("bookingUsecase.UpdateBookingStatus error publishing booking event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
		}
	}

	booking.Status = newStatus
	u.log.Info("bookingUsecase.UpdateBookingStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return buildBookingResponse(booking), nil
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		ID:           booking.ID,
		ConsultantID: booking.ConsultantID,
		StartAt:      booking.StartAt,
		EndAt:        booking.EndAt,
		Title:        booking.Title,
		Notes:        booking.Notes,
		Mode:         booking.Mode,
		Price:        booking.Price,
		Location:     booking.Location,
		Status:       string(booking.Status),
	}
}
