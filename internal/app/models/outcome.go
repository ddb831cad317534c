package models

type BookingOutcomeKind string

const (
	OutcomeConfirmed        BookingOutcomeKind = "confirmed"
	OutcomeRejected         BookingOutcomeKind = "rejected"
	OutcomeConflict         BookingOutcomeKind = "conflict"
	OutcomeTransientFailure BookingOutcomeKind = "transient_failure"
)

type BookingRejectReason string

const (
	RejectReasonValidation     BookingRejectReason = "validation"
	RejectReasonConsultantGone BookingRejectReason = "consultant_gone"
)

// BookingOutcome is the result of exactly one submission attempt. It is
// created once per attempt and never merged or accumulated.
type BookingOutcome struct {
	Kind          BookingOutcomeKind
	AppointmentID string
	Reason        BookingRejectReason
	Message       string
}
