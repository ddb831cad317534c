package bookingflow

import (
	"testing"
	"time"

	"fitbook-service/internal/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMachine(mode models.SessionMode) *DraftMachine {
	consultant := models.ConsultantRef{ID: "consultant-1", Name: "Dana Reyes", Mode: mode}
	pkg := models.PackageSelection{
		Kind:      models.PackageKindSession,
		BasePrice: decimal.RequireFromString("49.99"),
		Label:     "Single session",
	}
	return NewDraftMachine(consultant, pkg, zap.NewNop())
}

func advanceToSlotSelect(t *testing.T, m *DraftMachine) {
	t.Helper()
	require.NoError(t, m.Advance())
	require.Equal(t, StepSlotSelect, m.CurrentStep())
}

func advanceToReview(t *testing.T, m *DraftMachine, mode models.SessionMode) {
	t.Helper()
	advanceToSlotSelect(t, m)
	require.NoError(t, m.SelectDay(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, m.SelectTime("10:00 AM"))
	require.NoError(t, m.Advance())
	if mode != "" {
		require.NoError(t, m.SetSessionMode(mode))
	}
	require.NoError(t, m.Advance())
	require.NoError(t, m.Advance())
	require.Equal(t, StepReview, m.CurrentStep())
}

func TestDraftMachineHappyPath(t *testing.T) {
	m := newTestMachine(models.SessionModeHybrid)
	assert.Equal(t, StepPackageConfirm, m.CurrentStep())

	advanceToReview(t, m, models.SessionModeOnline)

	draft := m.Draft()
	assert.Equal(t, "10:00 AM", draft.Slot.TimeLabel)
	assert.Equal(t, models.SessionModeOnline, draft.SessionMode())
	assert.True(t, draft.ReadyForSubmission())
}

func TestDraftMachineGuards(t *testing.T) {
	t.Run("cannot leave slot selection without a full slot", func(t *testing.T) {
		m := newTestMachine(models.SessionModeOnline)
		advanceToSlotSelect(t, m)

		require.Error(t, m.Advance())

		require.NoError(t, m.SelectDay(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)))
		require.Error(t, m.Advance(), "day alone is not enough")

		require.NoError(t, m.SelectTime("10:00 AM"))
		require.NoError(t, m.Advance())
	})

	t.Run("hybrid consultant requires an explicit mode", func(t *testing.T) {
		m := newTestMachine(models.SessionModeHybrid)
		advanceToSlotSelect(t, m)
		require.NoError(t, m.SelectDay(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, m.SelectTime("10:00 AM"))
		require.NoError(t, m.Advance())

		require.Error(t, m.Advance(), "details step must not pass without a mode")

		require.NoError(t, m.SetSessionMode(models.SessionModeOffline))
		require.NoError(t, m.Advance())
	})

	t.Run("single mode consultant needs no explicit mode", func(t *testing.T) {
		m := newTestMachine(models.SessionModeOnline)
		advanceToReview(t, m, "")
		assert.Equal(t, models.SessionModeOnline, m.Draft().SessionMode())
	})

	t.Run("mutations outside their step are rejected", func(t *testing.T) {
		m := newTestMachine(models.SessionModeOnline)
		require.Error(t, m.SelectDay(time.Now()), "slot selection is not open yet")
		require.Error(t, m.SetNotes("too early"))

		advanceToSlotSelect(t, m)
		require.Error(t, m.SetNotes("notes belong to the details step"))
	})

	t.Run("malformed time label never enters the draft", func(t *testing.T) {
		m := newTestMachine(models.SessionModeOnline)
		advanceToSlotSelect(t, m)
		require.Error(t, m.SelectTime("25:00 XX"))
		assert.False(t, m.Draft().Slot.TimeSet())
	})

	t.Run("cannot advance past review without a submission", func(t *testing.T) {
		m := newTestMachine(models.SessionModeOnline)
		advanceToReview(t, m, "")
		require.Error(t, m.Advance())
		assert.Equal(t, StepReview, m.CurrentStep())
	})
}

func TestDraftMachineBack(t *testing.T) {
	m := newTestMachine(models.SessionModeHybrid)
	advanceToReview(t, m, models.SessionModeOnline)

	require.NoError(t, m.Back())
	assert.Equal(t, StepPayment, m.CurrentStep())
	require.NoError(t, m.Back())
	assert.Equal(t, StepDetails, m.CurrentStep())
	require.NoError(t, m.Back())
	assert.Equal(t, StepSlotSelect, m.CurrentStep())
	require.NoError(t, m.Back())
	assert.Equal(t, StepPackageConfirm, m.CurrentStep())

	require.Error(t, m.Back(), "nothing before the first step")

	// Going back never loses entered data.
	draft := m.Draft()
	assert.Equal(t, "10:00 AM", draft.Slot.TimeLabel)
	assert.Equal(t, models.SessionModeOnline, draft.Mode)
}

func TestDraftMachineExit(t *testing.T) {
	m := newTestMachine(models.SessionModeOnline)
	advanceToSlotSelect(t, m)
	m.Exit()

	assert.True(t, m.Exited())
	require.Error(t, m.Advance())
	require.Error(t, m.Back())
	require.Error(t, m.SelectDay(time.Now()))

	// Late outcome application is a no-op after teardown.
	m.markSuccess("appt-1")
	assert.Empty(t, m.ConfirmedAppointmentID())
	m.recoverFromConflict()
	assert.True(t, m.Exited())
}
