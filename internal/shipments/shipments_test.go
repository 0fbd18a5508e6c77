package shipments_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/pkg/pagination"
	"github.com/JaimeStill/freightdesk/pkg/routes"
)

type mockSystem struct {
	listFn     func(ctx context.Context, page pagination.PageRequest, filters shipments.Filters) (*pagination.PageResult[shipments.Shipment], error)
	findFn     func(ctx context.Context, id uuid.UUID) (*shipments.Shipment, error)
	trackingFn func(ctx context.Context, number string) (*shipments.Shipment, error)
}

func (m *mockSystem) Handler() *shipments.Handler {
	return shipments.NewHandler(
		m,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultLimit: 50, MaxLimit: 100},
	)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters shipments.Filters) (*pagination.PageResult[shipments.Shipment], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*shipments.Shipment, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) FindByTracking(ctx context.Context, number string) (*shipments.Shipment, error) {
	return m.trackingFn(ctx, number)
}

func (m *mockSystem) FindByEmail(context.Context, uuid.UUID) (*shipments.Shipment, error) {
	return nil, shipments.ErrNotFound
}

func (m *mockSystem) Create(context.Context, shipments.CreateCommand) (*shipments.Shipment, error) {
	return nil, errors.New("not implemented")
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())
	return mux
}

func sampleShipment() shipments.Shipment {
	weight := "200kg"
	qty := 12
	eta := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	return shipments.Shipment{
		ID:             uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002"),
		EmailID:        uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7"),
		TrackingNumber: "TRK1740830400000042",
		Origin:         "Houston",
		Destination:    "Rotterdam",
		CargoDetails: shipments.Cargo{
			Type:     "steel beams",
			Weight:   &weight,
			Quantity: &qty,
		},
		Status:            shipments.StatusBooked,
		EstimatedDelivery: &eta,
		CreatedAt:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFiltersFromQuery(t *testing.T) {
	emailID := uuid.New()
	f := shipments.FiltersFromQuery(url.Values{
		"status":      {"booked"},
		"email_id":    {emailID.String()},
		"origin":      {"hou"},
		"destination": {"rot"},
	})

	if f.Status == nil || *f.Status != "booked" {
		t.Errorf("status = %v", f.Status)
	}
	if f.EmailID == nil || *f.EmailID != emailID {
		t.Errorf("email_id = %v", f.EmailID)
	}
	if f.Origin == nil || f.Destination == nil {
		t.Errorf("origin/destination = %v/%v", f.Origin, f.Destination)
	}

	f = shipments.FiltersFromQuery(url.Values{"email_id": {"not-a-uuid"}})
	if f.EmailID != nil {
		t.Errorf("malformed email_id should be dropped")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", shipments.ErrNotFound, http.StatusNotFound},
		{"duplicate", shipments.ErrDuplicate, http.StatusConflict},
		{"invalid id", shipments.ErrInvalidID, http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shipments.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandlerFind(t *testing.T) {
	s := sampleShipment()
	sys := &mockSystem{
		findFn: func(_ context.Context, id uuid.UUID) (*shipments.Shipment, error) {
			if id != s.ID {
				return nil, shipments.ErrNotFound
			}
			return &s, nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/shipments/"+s.ID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got shipments.Shipment
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CargoDetails.Type != "steel beams" || *got.CargoDetails.Quantity != 12 {
		t.Errorf("cargo = %+v", got.CargoDetails)
	}
	if got.CargoDetails.Dimensions != nil {
		t.Errorf("dimensions = %v, want nil", *got.CargoDetails.Dimensions)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/shipments/"+uuid.NewString(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/shipments/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", rec.Code)
	}
}

func TestHandlerFindByTracking(t *testing.T) {
	s := sampleShipment()
	var captured string
	sys := &mockSystem{
		trackingFn: func(_ context.Context, number string) (*shipments.Shipment, error) {
			captured = number
			if number != s.TrackingNumber {
				return nil, shipments.ErrNotFound
			}
			return &s, nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/shipments/tracking/"+s.TrackingNumber, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured != s.TrackingNumber {
		t.Errorf("tracking number = %q", captured)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/shipments/tracking/TRK0", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown tracking status = %d, want 404", rec.Code)
	}
}

func TestHandlerList(t *testing.T) {
	var captured shipments.Filters
	sys := &mockSystem{
		listFn: func(_ context.Context, page pagination.PageRequest, f shipments.Filters) (*pagination.PageResult[shipments.Shipment], error) {
			captured = f
			result := pagination.NewPageResult([]shipments.Shipment{sampleShipment()}, 1, page.Limit, page.Offset)
			return &result, nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, httptest.NewRequest("GET", "/shipments?status=booked", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured.Status == nil || *captured.Status != shipments.StatusBooked {
		t.Errorf("status filter = %v", captured.Status)
	}
}
