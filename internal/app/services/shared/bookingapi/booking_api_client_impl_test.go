package bookingapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/dto/requests"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseUrl string) *bookingAPIClient {
	return &bookingAPIClient{
		baseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		log:        zap.NewNop(),
	}
}

func sampleRequest() *requests.CreateBookingRequest {
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

func TestCreateBookingOutcomeMapping(t *testing.T) {
	testCases := []struct {
		name           string
		statusCode     int
		body           string
		expectedKind   models.BookingOutcomeKind
		expectedReason models.BookingRejectReason
	}{
		{
			name:         "created maps to confirmed",
			statusCode:   http.StatusCreated,
			body:         `{"success":true,"message":"Successfully created booking","data":{"id":"appt-42"}}`,
			expectedKind: models.OutcomeConfirmed,
		},
		{
			name:         "conflict maps to conflict",
			statusCode:   http.StatusConflict,
			body:         `{"success":false,"message":"This time slot has just been booked by someone else, please pick another one"}`,
			expectedKind: models.OutcomeConflict,
		},
		{
			name:           "bad request maps to validation rejection",
			statusCode:     http.StatusBadRequest,
			body:           `{"success":false,"message":"mode must be one of: online, offline"}`,
			expectedKind:   models.OutcomeRejected,
			expectedReason: models.RejectReasonValidation,
		},
		{
			name:           "not found maps to consultant gone",
			statusCode:     http.StatusNotFound,
			body:           `{"success":false,"message":"This consultant is no longer available"}`,
			expectedKind:   models.OutcomeRejected,
			expectedReason: models.RejectReasonConsultantGone,
		},
		{
			name:         "server error maps to transient failure",
			statusCode:   http.StatusInternalServerError,
			body:         `{"success":false,"message":"Something went wrong with the application, please try again later"}`,
			expectedKind: models.OutcomeTransientFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/bookings", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			outcome, err := client.CreateBooking(context.Background(), sampleRequest())
			require.NoError(t, err)
			assert.Equal(t, tc.expectedKind, outcome.Kind)
			assert.Equal(t, tc.expectedReason, outcome.Reason)
			assert.NotEmpty(t, outcome.Message)
		})
	}

	t.Run("confirmed outcome carries the appointment id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"appt-42"}}`))
		}))
		defer server.Close()

		outcome, err := newTestClient(server.URL).CreateBooking(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, "appt-42", outcome.AppointmentID)
	})

	t.Run("unreachable backend is a transient failure, not an error", func(t *testing.T) {
		outcome, err := newTestClient("http://127.0.0.1:1").CreateBooking(context.Background(), sampleRequest())
		require.NoError(t, err)
		assert.Equal(t, models.OutcomeTransientFailure, outcome.Kind)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("sends a patch to the status endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/bookings/appt-42/status", r.URL.Path)
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).UpdateBookingStatus(context.Background(), "appt-42", "cancelled")
		require.NoError(t, err)
	})

	t.Run("backend rejection surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"The booking you are looking for does not exist"}`))
		}))
		defer server.Close()

		err := newTestClient(server.URL).UpdateBookingStatus(context.Background(), "ghost", "cancelled")
		require.Error(t, err)
	})
}
