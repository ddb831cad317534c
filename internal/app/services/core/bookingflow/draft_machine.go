package bookingflow

import (
	"fmt"
	"sync"
	"time"

	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/exceptions"
	"fitbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Step identifies one screen of the booking wizard. Steps form a single
// forward path; there is no branching.
type Step string

const (
	StepPackageConfirm Step = "package_confirm"
	StepSlotSelect     Step = "slot_select"
	StepDetails        Step = "details"
	StepPayment        Step = "payment"
	StepReview         Step = "review"
	StepSuccess        Step = "success"
)

// DraftMachine owns one booking draft and enforces the wizard's step order.
// All mutations are restricted to the step that owns the field, so a screen
// can never edit data belonging to another screen.
type DraftMachine struct {
	mu            sync.Mutex
	draft         models.BookingDraft
	step          Step
	exited        bool
	appointmentID string
	log           *zap.Logger
}

func NewDraftMachine(consultant models.ConsultantRef, pkg models.PackageSelection, logger *zap.Logger) *DraftMachine {
	return &DraftMachine{
		draft: models.BookingDraft{
			Consultant: consultant,
			Package:    pkg,
		},
		step: StepPackageConfirm,
		log:  logger,
	}
}

func (m *DraftMachine) CurrentStep() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Draft returns a snapshot of the draft. Mutating the copy has no effect on
// the machine.
func (m *DraftMachine) Draft() models.BookingDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

func (m *DraftMachine) Exited() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exited
}

// ConfirmedAppointmentID is set once the workflow reaches the success step
// and is empty before that.
func (m *DraftMachine) ConfirmedAppointmentID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appointmentID
}

func (m *DraftMachine) SelectDay(day time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepSlotSelect); err != nil {
		return err
	}
	m.draft.Slot.Day = utils.DayOf(day)
	return nil
}

func (m *DraftMachine) SelectTime(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepSlotSelect); err != nil {
		return err
	}
	// Reject labels that cannot be turned into an instant before they enter
	// the draft.
	if _, err := utils.CombineDayAndLabel(time.Now().UTC(), label); err != nil {
		return err
	}
	m.draft.Slot.TimeLabel = label
	return nil
}

func (m *DraftMachine) SetSessionMode(mode models.SessionMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	if mode != models.SessionModeOnline && mode != models.SessionModeOffline {
		return exceptions.ErrMissingSessionMode(fmt.Errorf("unsupported session mode %q", mode))
	}
	m.draft.Mode = mode
	return nil
}

func (m *DraftMachine) SetNotes(notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	m.draft.Notes = notes
	return nil
}

func (m *DraftMachine) SetLocation(location string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireStep(StepDetails); err != nil {
		return err
	}
	m.draft.Location = location
	return nil
}

// Advance moves to the next step if the current step's guard passes. The
// review step cannot be advanced directly; only a confirmed submission moves
// the machine to success.
func (m *DraftMachine) Advance() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.exited {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("workflow already exited"), string(m.step))
	}

	var next Step
	switch m.step {
	case StepPackageConfirm:
		next = StepSlotSelect
	case StepSlotSelect:
		if !m.draft.Slot.Complete() {
			return exceptions.ErrMissingSlotSelection(nil)
		}
		next = StepDetails
	case StepDetails:
		if m.draft.Consultant.RequiresExplicitMode() && m.draft.Mode == "" {
			return exceptions.ErrMissingSessionMode(nil)
		}
		next = StepPayment
	case StepPayment:
		next = StepReview
	default:
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("cannot advance from %s", m.step), string(m.step))
	}

	m.log.Debug("draftMachine.Advance moving to next step",
		zap.String(constvars.LoggingBookingStepKey, string(next)),
	)
	m.step = next
	return nil
}

// Back returns to the previous step without touching any draft data.
func (m *DraftMachine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.exited {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("workflow already exited"), string(m.step))
	}

	var prev Step
	switch m.step {
	case StepSlotSelect:
		prev = StepPackageConfirm
	case StepDetails:
		prev = StepSlotSelect
	case StepPayment:
		prev = StepDetails
	case StepReview:
		prev = StepPayment
	default:
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("cannot go back from %s", m.step), string(m.step))
	}

	m.step = prev
	return nil
}

// Exit tears the workflow down. Every later mutation and submission outcome
// is rejected or discarded.
func (m *DraftMachine) Exit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exited = true
}

func (m *DraftMachine) requireStep(step Step) error {
	if m.exited {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("workflow already exited"), string(m.step))
	}
	if m.step != step {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("operation belongs to step %s", step), string(m.step))
	}
	return nil
}

// markSuccess records a confirmed appointment and lands on the success step.
func (m *DraftMachine) markSuccess(appointmentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.exited {
		return
	}
	m.appointmentID = appointmentID
	m.step = StepSuccess
}

// recoverFromConflict clears only the slot choice and returns the machine to
// slot selection so the user can pick another time. Everything else entered
// so far survives.
func (m *DraftMachine) recoverFromConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.exited {
		return
	}
	m.draft.ClearSlot()
	m.step = StepSlotSelect
}
