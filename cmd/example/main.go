package main

import (
	"context"
	"fmt"
	"time"

	"fitbook-service/internal/app/config"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/app/services/core/bookingflow"
	"fitbook-service/internal/app/services/shared/bookingapi"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Walks the whole booking wizard once against a running backend: pick a
// package, pick a slot, fill in details, review, submit.
func main() {
	internalConfig := config.NewInternalConfig()
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		logrus.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	consultant := models.ConsultantRef{
		ID:   "consultant-demo",
		Name: "Alex Carter",
		Mode: models.SessionModeHybrid,
	}
	pkg := models.PackageSelection{
		Kind:      models.PackageKindSession,
		BasePrice: decimal.RequireFromString("49.99"),
		Label:     "Single session",
	}

	machine := bookingflow.NewDraftMachine(consultant, pkg, zapLogger)
	apiClient := bookingapi.NewBookingAPIClient(internalConfig, zapLogger)
	coordinator := bookingflow.NewConfirmationCoordinator(machine, apiClient, zapLogger)

	days := bookingflow.CandidateDays(time.Now().UTC(), 14)
	labels := bookingflow.TimeOfDayOptions()

	steps := []func() error{
		machine.Advance, // package confirmed
		func() error { return machine.SelectDay(days[1]) },
		func() error { return machine.SelectTime(labels[1]) },
		machine.Advance, // slot chosen
		func() error { return machine.SetSessionMode(models.SessionModeOnline) },
		func() error { return machine.SetNotes("First session, goal setting") },
		machine.Advance, // details done
		machine.Advance, // payment acknowledged
	}
	for _, step := range steps {
		if err := step(); err != nil {
			logrus.Fatalf("Wizard step failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	outcome, err := coordinator.Submit(ctx)
	if err != nil {
		logrus.Fatalf("Submission failed: %v", err)
	}

	fmt.Printf("Outcome: %s\n", outcome.Kind)
	if outcome.Kind == models.OutcomeConfirmed {
		fmt.Printf("Appointment ID: %s\n", machine.ConfirmedAppointmentID())
	}
	fmt.Printf("Final step: %s\n", machine.CurrentStep())
}
