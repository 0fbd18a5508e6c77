package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/internal/shipments"
)

const (
	trackingTemperature = 0.3
	transitLead         = 2 * 24 * time.Hour
	arrivalWindow       = 3 * 24 * time.Hour
)

// HandleTracking reads the tracking number from the email and reports the
// shipment's progress. An unknown number is a successful "Not Found" result.
func HandleTracking(ctx context.Context, rt *Runtime, email Email, emailID uuid.UUID) Result {
	prompt := ComposePrompt(ctx, rt, prompts.StageTracking, email)

	reply, err := rt.Gateway.Invoke(ctx, prompt, trackingTemperature)
	if err != nil {
		return fail(err)
	}

	number := strings.TrimSpace(reply)
	now := rt.Time()

	shipment, err := rt.Shipments.FindByTracking(ctx, number)
	if err != nil {
		if !errors.Is(err, shipments.ErrNotFound) {
			rt.Logger.WarnContext(ctx, "shipment lookup failed", "email_id", emailID, "tracking_number", number, "error", err)
		}
		return Result{Success: true, Data: notFound(number, now)}
	}

	return Result{Success: true, Data: progress(shipment, number, now)}
}

func notFound(number string, now time.Time) TrackingResult {
	return TrackingResult{
		TrackingNumber: number,
		CurrentStatus:  "Not Found",
		Location:       "Unknown",
		ETA:            "N/A",
		Events: []TrackingEvent{
			{Timestamp: now, Status: "Tracking number not found in system", Location: "N/A"},
		},
	}
}

// progress synthesizes the tracking history shown for a known shipment.
func progress(s *shipments.Shipment, number string, now time.Time) TrackingResult {
	return TrackingResult{
		TrackingNumber: orDefault(s.TrackingNumber, number),
		CurrentStatus:  orDefault(s.Status, "In Transit"),
		Location:       orDefault(s.Destination, "Unknown"),
		ETA:            now.Add(arrivalWindow).Format(time.RFC3339),
		Events: []TrackingEvent{
			{Timestamp: s.CreatedAt, Status: "Booked", Location: orDefault(s.Origin, "Origin")},
			{Timestamp: now.Add(-transitLead), Status: "In Transit", Location: "Transit Hub"},
			{Timestamp: now, Status: "Out for Delivery", Location: orDefault(s.Destination, "Destination")},
		},
	}
}
