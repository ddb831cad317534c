package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepository mimics the unique slot-claim index with an in-memory
// map keyed by consultant and start instant.
type fakeBookingRepository struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	claims   map[string]string // claim key -> booking ID
}

func newFakeBookingRepository() *fakeBookingRepository {
	return &fakeBookingRepository{
		bookings: make(map[string]*models.Booking),
		claims:   make(map[string]string),
	}
}

func claimKey(consultantID string, startAt time.Time) string {
	return consultantID + "|" + startAt.UTC().Format(time.RFC3339)
}

func (r *fakeBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := claimKey(booking.ConsultantID, booking.StartAt)
	if _, taken := r.claims[key]; taken {
		return exceptions.ErrBookingSlotTaken(nil)
	}
	r.claims[key] = booking.ID
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[bookingID]
	if !ok {
		return exceptions.ErrBookingNotFound(nil)
	}
	booking.Status = status
	return nil
}

func (r *fakeBookingRepository) ReleaseClaim(ctx context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, id := range r.claims {
		if id == bookingID {
			delete(r.claims, key)
		}
	}
	return nil
}

type fakeConsultantRepository struct {
	consultants map[string]*models.ConsultantRef
}

func (r *fakeConsultantRepository) FindByID(ctx context.Context, consultantID string) (*models.ConsultantRef, error) {
	consultant, ok := r.consultants[consultantID]
	if !ok {
		return nil, exceptions.ErrConsultantNotFound(nil)
	}
	return consultant, nil
}

// fakeLocker grants every lock; the claim map is what decides conflicts.
type fakeLocker struct{}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, "lock-value", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []contracts.BookingEvent
}

func (p *fakePublisher) PublishBookingEvent(ctx context.Context, event contracts.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []contracts.BookingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]contracts.BookingEvent(nil), p.events...)
}

func newTestUsecase(repo *fakeBookingRepository, publisher *fakePublisher) contracts.BookingUsecase {
	consultantRepo := &fakeConsultantRepository{
		consultants: map[string]*models.ConsultantRef{
			"consultant-1": {ID: "consultant-1", Name: "Dana Reyes", Mode: models.SessionModeHybrid},
		},
	}
	return &bookingUsecase{
		bookingRepo:    repo,
		consultantRepo: consultantRepo,
		locker:         &fakeLocker{},
		publisher:      publisher,
		log:            zap.NewNop(),
	}
}

func validCreateRequest() *requests.CreateBookingRequest {
	startAt := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	return &requests.CreateBookingRequest{
		ConsultantID: "consultant-1",
		StartAt:      startAt,
		EndAt:        startAt.Add(30 * time.Minute),
		Title:        "Consultation with Dana Reyes",
		Mode:         "online",
		Price:        decimal.RequireFromString("54.99"),
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("creates booking and publishes event", func(t *testing.T) {
		repo := newFakeBookingRepository()
		publisher := &fakePublisher{}
		usecase := newTestUsecase(repo, publisher)

		response, err := usecase.CreateBooking(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "confirmed", response.Status)

		events := publisher.published()
		require.Len(t, events, 1)
		assert.Equal(t, "booking.confirmed", events[0].Kind)
		assert.Equal(t, response.ID, events[0].BookingID)
	})

	t.Run("unknown consultant is a 404", func(t *testing.T) {
		repo := newFakeBookingRepository()
		usecase := newTestUsecase(repo, &fakePublisher{})

		request := validCreateRequest()
		request.ConsultantID = "ghost"

		_, err := usecase.CreateBooking(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("invalid body is a 400", func(t *testing.T) {
		usecase := newTestUsecase(newFakeBookingRepository(), &fakePublisher{})

		request := validCreateRequest()
		request.Mode = "carrier-pigeon"

		_, err := usecase.CreateBooking(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("end before start is a 400", func(t *testing.T) {
		usecase := newTestUsecase(newFakeBookingRepository(), &fakePublisher{})

		request := validCreateRequest()
		request.EndAt = request.StartAt.Add(-time.Minute)

		_, err := usecase.CreateBooking(context.Background(), request)
		require.Error(t, err)
	})

	t.Run("double booking the same slot is a 409", func(t *testing.T) {
		repo := newFakeBookingRepository()
		usecase := newTestUsecase(repo, &fakePublisher{})

		_, err := usecase.CreateBooking(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = usecase.CreateBooking(context.Background(), validCreateRequest())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("concurrent requests produce exactly one booking", func(t *testing.T) {
		repo := newFakeBookingRepository()
		usecase := newTestUsecase(repo, &fakePublisher{})

		const attempts = 8
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := usecase.CreateBooking(context.Background(), validCreateRequest())
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Len(t, repo.bookings, 1)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("cancelling releases the slot for re-booking", func(t *testing.T) {
		repo := newFakeBookingRepository()
		publisher := &fakePublisher{}
		usecase := newTestUsecase(repo, publisher)

		created, err := usecase.CreateBooking(context.Background(), validCreateRequest())
		require.NoError(t, err)

		updated, err := usecase.UpdateBookingStatus(context.Background(), created.ID, &requests.UpdateBookingStatusRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", updated.Status)

		events := publisher.published()
		require.Len(t, events, 2)
		assert.Equal(t, "booking.cancelled", events[1].Kind)

		// The slot is free again.
		_, err = usecase.CreateBooking(context.Background(), validCreateRequest())
		require.NoError(t, err)
	})

	t.Run("cancelled bookings cannot be confirmed again", func(t *testing.T) {
		repo := newFakeBookingRepository()
		usecase := newTestUsecase(repo, &fakePublisher{})

		created, err := usecase.CreateBooking(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = usecase.UpdateBookingStatus(context.Background(), created.ID, &requests.UpdateBookingStatusRequest{Status: "cancelled"})
		require.NoError(t, err)

		_, err = usecase.UpdateBookingStatus(context.Background(), created.ID, &requests.UpdateBookingStatusRequest{Status: "confirmed"})
		require.Error(t, err)
	})

	t.Run("unknown booking is a 404", func(t *testing.T) {
		usecase := newTestUsecase(newFakeBookingRepository(), &fakePublisher{})

		_, err := usecase.UpdateBookingStatus(context.Background(), "ghost", &requests.UpdateBookingStatusRequest{Status: "cancelled"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("unsupported status is rejected", func(t *testing.T) {
		repo := newFakeBookingRepository()
		usecase := newTestUsecase(repo, &fakePublisher{})

		created, err := usecase.CreateBooking(context.Background(), validCreateRequest())
		require.NoError(t, err)

		_, err = usecase.UpdateBookingStatus(context.Background(), created.ID, &requests.UpdateBookingStatusRequest{Status: "postponed"})
		require.Error(t, err)
	})
}

func TestFindBookingByID(t *testing.T) {
	repo := newFakeBookingRepository()
	usecase := newTestUsecase(repo, &fakePublisher{})

	created, err := usecase.CreateBooking(context.Background(), validCreateRequest())
	require.NoError(t, err)

	found, err := usecase.FindBookingByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "54.99", found.Price.StringFixed(2))

	_, err = usecase.FindBookingByID(context.Background(), "ghost")
	require.Error(t, err)
}
