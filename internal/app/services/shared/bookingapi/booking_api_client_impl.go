package bookingapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"fitbook-service/internal/app/config"
	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/dto/responses"
	"fitbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	bookingAPIClientInstance contracts.BookingAPIClient
	onceBookingAPIClient     sync.Once
)

type bookingAPIClient struct {
	baseUrl    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewBookingAPIClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.BookingAPIClient {
	onceBookingAPIClient.Do(func() {
		bookingAPIClientInstance = &bookingAPIClient{
			baseUrl: cfg.BookingBackend.BaseUrl,
			httpClient: &http.Client{
				Timeout: time.Duration(cfg.BookingBackend.TimeoutInSeconds) * time.Second,
			},
			log: logger,
		}
	})
	return bookingAPIClientInstance
}

type backendErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateBooking submits one booking attempt and classifies the backend's
// answer. Transport failures and 5xx responses are reported as a transient
// outcome rather than an error, so the caller can offer a retry.
func (c *bookingAPIClient) CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*models.BookingOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := fmt.Sprintf("%s/%s", c.baseUrl, constvars.ResourceBooking)
	c.log.Info("bookingAPIClient.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingBackendUrlKey, url),
		zap.String(constvars.LoggingConsultantIDKey, request.ConsultantID),
		zap.Time(constvars.LoggingStartAtKey, request.StartAt),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		c.log.Warn("bookingAPIClient.CreateBooking transport error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &models.BookingOutcome{
			Kind:    models.OutcomeTransientFailure,
			Message: constvars.ErrClientBookingServiceDown,
		}, nil
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return &models.BookingOutcome{
			Kind:    models.OutcomeTransientFailure,
			Message: constvars.ErrClientBookingServiceDown,
		}, nil
	}

	outcome := c.classifyCreateResponse(httpResponse.StatusCode, responseBody)
	c.log.Info("bookingAPIClient.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingBackendStatusKey, httpResponse.StatusCode),
		zap.String(constvars.LoggingOutcomeKey, string(outcome.Kind)),
	)
	return outcome, nil
}

func (c *bookingAPIClient) classifyCreateResponse(statusCode int, body []byte) *models.BookingOutcome {
	switch {
	case statusCode >= 200 && statusCode < 300:
		var envelope struct {
			Success bool                    `json:"success"`
			Message string                  `json:"message"`
			Data    responses.CreateBooking `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			// A 2xx with an undecodable body still means the booking exists.
			return &models.BookingOutcome{Kind: models.OutcomeConfirmed}
		}
		return &models.BookingOutcome{
			Kind:          models.OutcomeConfirmed,
			AppointmentID: envelope.Data.ID,
			Message:       envelope.Message,
		}
	case statusCode == http.StatusConflict:
		return &models.BookingOutcome{
			Kind:    models.OutcomeConflict,
			Message: backendMessage(body, constvars.ErrClientSlotAlreadyBooked),
		}
	case statusCode == http.StatusBadRequest:
		return &models.BookingOutcome{
			Kind:    models.OutcomeRejected,
			Reason:  models.RejectReasonValidation,
			Message: backendMessage(body, constvars.ErrClientCannotProcessRequest),
		}
	case statusCode == http.StatusNotFound:
		return &models.BookingOutcome{
			Kind:    models.OutcomeRejected,
			Reason:  models.RejectReasonConsultantGone,
			Message: backendMessage(body, constvars.ErrClientConsultantNotFound),
		}
	default:
		return &models.BookingOutcome{
			Kind:    models.OutcomeTransientFailure,
			Message: backendMessage(body, constvars.ErrClientBookingServiceDown),
		}
	}
}

func (c *bookingAPIClient) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := fmt.Sprintf("%s/%s/%s/status", c.baseUrl, constvars.ResourceBooking, bookingID)
	c.log.Info("bookingAPIClient.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingBackendUrlKey, url),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	body, err := json.Marshal(requests.UpdateBookingStatusRequest{Status: status})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(httpResponse.Body)
		message := backendMessage(responseBody, constvars.ErrClientCannotProcessRequest)
		c.log.Error("bookingAPIClient.UpdateBookingStatus backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingBookingBackendStatusKey, httpResponse.StatusCode),
			zap.String(constvars.LoggingBookingBackendResponseKey, message),
		)
		return exceptions.BuildNewCustomError(
			fmt.Errorf("booking backend returned status %d", httpResponse.StatusCode),
			httpResponse.StatusCode,
			message,
			constvars.ErrDevSendHTTPRequest,
		)
	}

	c.log.Info("bookingAPIClient.UpdateBookingStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return nil
}

func backendMessage(body []byte, fallback string) string {
	var parsed backendErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		return fallback
	}
	return parsed.Message
}
