package workflow

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/pkg/formatting"
	"github.com/JaimeStill/freightdesk/pkg/metrics"
)

const (
	bookingTemperature = 0.5
	deliveryWindow     = 7 * 24 * time.Hour
)

type bookingReply struct {
	Origin      looseString `json:"origin"`
	Destination looseString `json:"destination"`
	CargoType   looseString `json:"cargoType"`
	Weight      looseString `json:"weight"`
	Dimensions  looseString `json:"dimensions"`
	Quantity    looseInt    `json:"quantity"`
}

// HandleBooking extracts shipment details, assigns a tracking number, and
// books the shipment. A failed insert is logged and reported through
// Persisted; the booking itself still succeeds.
func HandleBooking(ctx context.Context, rt *Runtime, email Email, emailID uuid.UUID) Result {
	prompt := ComposePrompt(ctx, rt, prompts.StageBooking, email)

	reply, err := rt.Gateway.Invoke(ctx, prompt, bookingTemperature)
	if err != nil {
		return fail(err)
	}

	parsed, err := formatting.Parse[bookingReply](reply)
	if err != nil {
		rt.Logger.WarnContext(ctx, "booking extraction failed", "email_id", emailID, "error", err)
		return fail(errBookingExtraction)
	}

	now := rt.Time()
	eta := now.Add(deliveryWindow)

	booking := BookingResult{
		TrackingNumber: TrackingNumber(now),
		Origin:         string(parsed.Origin),
		Destination:    string(parsed.Destination),
		CargoDetails: shipments.Cargo{
			Type:       string(parsed.CargoType),
			Weight:     optString(parsed.Weight),
			Dimensions: optString(parsed.Dimensions),
			Quantity:   optInt(parsed.Quantity),
		},
		Status:            shipments.StatusBooked,
		EstimatedDelivery: eta,
	}

	_, err = rt.Shipments.Create(ctx, shipments.CreateCommand{
		EmailID:           emailID,
		TrackingNumber:    booking.TrackingNumber,
		Origin:            booking.Origin,
		Destination:       booking.Destination,
		CargoDetails:      booking.CargoDetails,
		Status:            booking.Status,
		EstimatedDelivery: &eta,
	})
	if err != nil {
		rt.Logger.ErrorContext(ctx, "shipment insert failed", "email_id", emailID, "tracking_number", booking.TrackingNumber, "error", err)
		metrics.RecordPersistenceFailure("shipments")
	} else {
		booking.Persisted = true
	}

	return Result{Success: true, Data: booking}
}

// TrackingNumber formats a tracking number as TRK followed by the Unix
// millisecond timestamp and a three-digit random suffix.
func TrackingNumber(now time.Time) string {
	return fmt.Sprintf("TRK%d%03d", now.UnixMilli(), rand.IntN(1000))
}
