package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleDraft(mode SessionMode) BookingDraft {
	return BookingDraft{
		Consultant: ConsultantRef{ID: "consultant-1", Name: "Dana Reyes", Mode: mode},
		Package: PackageSelection{
			Kind:      PackageKindSession,
			BasePrice: decimal.RequireFromString("49.99"),
			Label:     "Single session",
		},
		Slot: SlotChoice{
			Day:       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			TimeLabel: "10:00 AM",
		},
	}
}

func TestBookingDraftSessionMode(t *testing.T) {
	t.Run("explicit pick wins for hybrid consultants", func(t *testing.T) {
		draft := sampleDraft(SessionModeHybrid)
		draft.Mode = SessionModeOnline
		assert.Equal(t, SessionModeOnline, draft.SessionMode())
	})

	t.Run("single mode consultant needs no pick", func(t *testing.T) {
		assert.Equal(t, SessionModeOffline, sampleDraft(SessionModeOffline).SessionMode())
	})

	t.Run("accessors work on plain copies", func(t *testing.T) {
		// Chained calls on function return values; the accessors must not
		// require an addressable draft.
		assert.True(t, sampleDraft(SessionModeOnline).ReadyForSubmission())
		assert.Equal(t, SessionModeOnline, sampleDraft(SessionModeOnline).SessionMode())
	})
}

func TestBookingDraftReadyForSubmission(t *testing.T) {
	t.Run("complete online draft is ready", func(t *testing.T) {
		assert.True(t, sampleDraft(SessionModeOnline).ReadyForSubmission())
	})

	t.Run("hybrid draft needs an explicit mode", func(t *testing.T) {
		draft := sampleDraft(SessionModeHybrid)
		assert.False(t, draft.ReadyForSubmission())

		draft.Mode = SessionModeOffline
		assert.True(t, draft.ReadyForSubmission())
	})

	t.Run("missing package or slot blocks submission", func(t *testing.T) {
		draft := sampleDraft(SessionModeOnline)
		draft.Package.Label = ""
		assert.False(t, draft.ReadyForSubmission())

		draft = sampleDraft(SessionModeOnline)
		draft.Slot.TimeLabel = ""
		assert.False(t, draft.ReadyForSubmission())
	})
}

func TestBookingDraftClearSlot(t *testing.T) {
	draft := sampleDraft(SessionModeHybrid)
	draft.Mode = SessionModeOnline
	draft.Notes = "keep me"

	draft.ClearSlot()

	assert.False(t, draft.Slot.DaySet())
	assert.False(t, draft.Slot.TimeSet())
	assert.Equal(t, SessionModeOnline, draft.Mode)
	assert.Equal(t, "keep me", draft.Notes)
	assert.Equal(t, "Single session", draft.Package.Label)
}
