package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackageKind string

const (
	PackageKindSession PackageKind = "session"
	PackageKindWeek    PackageKind = "week"
	PackageKindMonth   PackageKind = "month"
	PackageKindCustom  PackageKind = "custom-package"
)

// PackageSelection is fixed before the workflow starts and never changes
// while a draft is alive.
type PackageSelection struct {
	Kind      PackageKind     `json:"kind"`
	BasePrice decimal.Decimal `json:"base_price"`
	Label     string          `json:"label"`
}

// SlotChoice pairs a calendar day with one of the catalog's time-of-day
// labels. Both start unset and are filled in by explicit user selection.
type SlotChoice struct {
	Day       time.Time `json:"day"`
	TimeLabel string    `json:"time_label"`
}

func (s SlotChoice) DaySet() bool {
	return !s.Day.IsZero()
}

func (s SlotChoice) TimeSet() bool {
	return s.TimeLabel != ""
}

func (s SlotChoice) Complete() bool {
	return s.DaySet() && s.TimeSet()
}

// BookingDraft is the aggregate the wizard builds step by step. It lives only
// for the duration of one workflow run.
type BookingDraft struct {
	Consultant ConsultantRef
	Package    PackageSelection
	Slot       SlotChoice
	Mode       SessionMode
	Notes      string
	Location   string
}

// ReadyForSubmission reports whether the draft satisfies every guard:
// package set, slot fully chosen, and a mode picked whenever the consultant
// is hybrid.
func (d BookingDraft) ReadyForSubmission() bool {
	if d.Package.Label == "" {
		return false
	}
	if !d.Slot.Complete() {
		return false
	}
	if d.Consultant.RequiresExplicitMode() && d.Mode == "" {
		return false
	}
	return true
}

// ClearSlot resets only the slot choice, leaving package, mode, notes and
// location untouched. This is the conflict-recovery reset.
func (d *BookingDraft) ClearSlot() {
	d.Slot = SlotChoice{}
}

// SessionMode resolves the mode that goes on the wire: the explicit pick for
// hybrid consultants, the consultant's single supported mode otherwise.
func (d BookingDraft) SessionMode() SessionMode {
	if d.Mode != "" {
		return d.Mode
	}
	return d.Consultant.Mode
}
