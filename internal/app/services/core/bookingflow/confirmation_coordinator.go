package bookingflow

import (
	"context"
	"fmt"
	"sync"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/dto/requests"
	"fitbook-service/internal/pkg/exceptions"
	"fitbook-service/internal/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConfirmationCoordinator turns a review-step draft into exactly one backend
// submission at a time and applies the outcome back onto the machine. One
// coordinator serves one machine for the machine's whole lifetime.
type ConfirmationCoordinator struct {
	mu       sync.Mutex
	inFlight bool

	machine   *DraftMachine
	apiClient contracts.BookingAPIClient
	taxRate   decimal.Decimal
	log       *zap.Logger
}

func NewConfirmationCoordinator(machine *DraftMachine, apiClient contracts.BookingAPIClient, logger *zap.Logger) *ConfirmationCoordinator {
	return &ConfirmationCoordinator{
		machine:   machine,
		apiClient: apiClient,
		taxRate:   decimal.RequireFromString(constvars.BookingTaxRate),
		log:       logger,
	}
}

// Submit sends the draft to the booking backend. While one submission is
// outstanding every further call fails fast, so a double tap on the confirm
// button can never produce two bookings.
func (c *ConfirmationCoordinator) Submit(ctx context.Context) (*models.BookingOutcome, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, exceptions.ErrSubmissionInFlight(nil)
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	request, err := c.buildRequest()
	if err != nil {
		return nil, err
	}

	c.log.Info("confirmationCoordinator.Submit called",
		zap.String(constvars.LoggingConsultantIDKey, request.ConsultantID),
		zap.Time(constvars.LoggingStartAtKey, request.StartAt),
	)

	outcome, err := c.apiClient.CreateBooking(ctx, request)
	if err != nil {
		return nil, err
	}

	c.applyOutcome(outcome)
	c.log.Info("confirmationCoordinator.Submit succeeded",
		zap.String(constvars.LoggingOutcomeKey, string(outcome.Kind)),
	)
	return outcome, nil
}

// buildRequest projects the draft onto the wire format. It recomputes the
// start and end instants and the taxed total from first principles so the
// backend always sees values derived from the actual selections.
func (c *ConfirmationCoordinator) buildRequest() (*requests.CreateBookingRequest, error) {
	if step := c.machine.CurrentStep(); step != StepReview {
		return nil, exceptions.ErrInvalidStepTransition(fmt.Errorf("submission requires the review step"), string(step))
	}

	draft := c.machine.Draft()
	if !draft.ReadyForSubmission() {
		return nil, exceptions.ErrMissingSlotSelection(nil)
	}

	startAt, err := utils.CombineDayAndLabel(draft.Slot.Day, draft.Slot.TimeLabel)
	if err != nil {
		return nil, err
	}

	total, err := utils.TotalWithTax(draft.Package.BasePrice, c.taxRate)
	if err != nil {
		return nil, err
	}

	return &requests.CreateBookingRequest{
		ConsultantID: draft.Consultant.ID,
		StartAt:      startAt,
		EndAt:        utils.SessionEnd(startAt),
		Title:        fmt.Sprintf("Consultation with %s", draft.Consultant.Name),
		Notes:        draft.Notes,
		Mode:         string(draft.SessionMode()),
		Price:        total,
		Location:     draft.Location,
	}, nil
}

// applyOutcome moves the machine according to the submission result. An
// outcome arriving after the machine was torn down is discarded.
func (c *ConfirmationCoordinator) applyOutcome(outcome *models.BookingOutcome) {
	if c.machine.Exited() {
		c.log.Info("confirmationCoordinator.applyOutcome discarding outcome, workflow exited",
			zap.String(constvars.LoggingOutcomeKey, string(outcome.Kind)),
		)
		return
	}

	switch outcome.Kind {
	case models.OutcomeConfirmed:
		c.machine.markSuccess(outcome.AppointmentID)
	case models.OutcomeConflict:
		c.machine.recoverFromConflict()
	case models.OutcomeRejected:
		if outcome.Reason == models.RejectReasonConsultantGone {
			c.machine.Exit()
		}
		// Validation rejections keep the machine on review so the user can
		// correct the draft.
	case models.OutcomeTransientFailure:
		// The machine stays on review; the user may retry.
	}
}
