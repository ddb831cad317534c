package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/dto/responses"
	"fitbook-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingUsecase struct {
	createResponse *responses.CreateBooking
	createErr      error
}

func (f *fakeBookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*responses.CreateBooking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResponse, nil
}

func (f *fakeBookingUsecase) FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	return nil, exceptions.ErrBookingNotFound(nil)
}

func (f *fakeBookingUsecase) UpdateBookingStatus(ctx context.Context, bookingID string, request *requests.UpdateBookingStatusRequest) (*responses.Booking, error) {
	return nil, exceptions.ErrBookingNotFound(nil)
}

func newBookingTestRouter(usecase *fakeBookingUsecase) *chi.Mux {
	controller := NewBookingController(zap.NewNop(), usecase, 10)
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "FITBOOK_SVC_test")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Post("/bookings", controller.CreateBooking)
	router.Get("/bookings/{bookingID}", controller.FindBookingByID)
	return router
}

func TestBookingControllerCreateBooking(t *testing.T) {
	body := `{
		"consultant_id": "consultant-1",
		"start_at": "2026-02-10T10:00:00Z",
		"end_at": "2026-02-10T10:30:00Z",
		"title": "Consultation with Dana Reyes",
		"mode": "online",
		"price": "54.99"
	}`

	t.Run("created booking returns 201 with payload", func(t *testing.T) {
		usecase := &fakeBookingUsecase{
			createResponse: &responses.CreateBooking{
				ID:           "booking-1",
				ConsultantID: "consultant-1",
				StartAt:      time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC),
				EndAt:        time.Date(2026, 2, 10, 10, 30, 0, 0, time.UTC),
				Status:       "confirmed",
			},
		}
		router := newBookingTestRouter(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var parsed responses.ResponseDTO
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
		assert.True(t, parsed.Success)
	})

	t.Run("slot conflict surfaces as 409", func(t *testing.T) {
		usecase := &fakeBookingUsecase{createErr: exceptions.ErrBookingSlotTaken(nil)}
		router := newBookingTestRouter(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("garbage body is a 400", func(t *testing.T) {
		router := newBookingTestRouter(&fakeBookingUsecase{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing request id is a 500", func(t *testing.T) {
		controller := NewBookingController(zap.NewNop(), &fakeBookingUsecase{}, 10)
		router := chi.NewRouter()
		router.Post("/bookings", controller.CreateBooking)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestBookingControllerFindBookingByID(t *testing.T) {
	router := newBookingTestRouter(&fakeBookingUsecase{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/bookings/ghost", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}
