package intake_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/intake"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/pkg/storage"
	"github.com/JaimeStill/freightdesk/pkg/validation"
)

func validSubmission() intake.Submission {
	return intake.Submission{
		Subject:   "Where is my container?",
		Sender:    "client@x.com",
		Recipient: "support@carrier.com",
		Body:      "It was due last week.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*intake.Submission)
		want   string
	}{
		{"missing subject", func(s *intake.Submission) { s.Subject = "" }, "Subject is required"},
		{"invalid sender", func(s *intake.Submission) { s.Sender = "client" }, "Invalid sender email"},
		{"invalid recipient", func(s *intake.Submission) { s.Recipient = "" }, "Invalid recipient email"},
		{"missing body", func(s *intake.Submission) { s.Body = "" }, "Body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := intake.Validate(sub)
			if !errors.Is(err, intake.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}

			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("err does not carry *validation.Error: %v", err)
			}
			if verr.Error() != tt.want {
				t.Errorf("message = %q, want %q", verr.Error(), tt.want)
			}
		})
	}

	if err := intake.Validate(validSubmission()); err != nil {
		t.Errorf("valid submission rejected: %v", err)
	}
}

func TestProcessRejectsBeforePersisting(t *testing.T) {
	e := newEnv(false)
	sub := validSubmission()
	sub.Sender = "not-an-email"

	_, err := e.system().Process(context.Background(), sub)
	if !errors.Is(err, intake.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(e.emails.byID) != 0 || e.gw.calls != 0 {
		t.Error("invalid submission must not be stored or classified")
	}
}

func TestProcess(t *testing.T) {
	e := newEnv(true)
	sys := e.system()

	out, err := sys.Process(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !out.Success || out.Classification != category.Customer {
		t.Errorf("outcome = %+v", out)
	}

	stored := e.emails.byID[out.EmailID]
	if stored.Status != emails.StatusCompleted {
		t.Errorf("email status = %q", stored.Status)
	}

	a, err := sys.Archived(context.Background(), out.EmailID)
	if err != nil {
		t.Fatalf("Archived: %v", err)
	}
	if a.EmailID != out.EmailID || a.Submission != validSubmission() {
		t.Errorf("archive = %+v", a)
	}
	if !a.ReceivedAt.Equal(fixedNow) {
		t.Errorf("received at = %s, want the runtime clock %s", a.ReceivedAt, fixedNow)
	}
}

func TestArchivedDisabled(t *testing.T) {
	e := newEnv(false)
	sys := e.system()

	out, err := sys.Process(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	_, err = sys.Archived(context.Background(), out.EmailID)
	if !errors.Is(err, storage.ErrDisabled) {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
	if intake.MapHTTPStatus(err) != http.StatusNotFound {
		t.Errorf("status = %d, want 404", intake.MapHTTPStatus(err))
	}
}

func TestDetail(t *testing.T) {
	t.Run("booking shows shipment", func(t *testing.T) {
		e := newEnv(false)
		id := e.seed(category.Booking)
		e.related.shipments[id] = shipments.Shipment{EmailID: id, TrackingNumber: "TRK1"}

		d, err := e.system().Detail(context.Background(), id)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}

		s, ok := d.Related.(*shipments.Shipment)
		if !ok || s.TrackingNumber != "TRK1" {
			t.Errorf("related = %#v", d.Related)
		}
		if d.Executions == nil {
			t.Error("executions should be an empty list, not nil")
		}
	})

	t.Run("management shows issue", func(t *testing.T) {
		e := newEnv(false)
		id := e.seed(category.Management)
		e.related.issues[id] = issues.Issue{EmailID: id, Title: "Port strike"}

		d, err := e.system().Detail(context.Background(), id)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if i, ok := d.Related.(*issues.Issue); !ok || i.Title != "Port strike" {
			t.Errorf("related = %#v", d.Related)
		}
	})

	t.Run("missing related record is null", func(t *testing.T) {
		e := newEnv(false)
		id := e.seed(category.Documents)

		d, err := e.system().Detail(context.Background(), id)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if d.Related != nil {
			t.Errorf("related = %#v, want nil", d.Related)
		}

		data, _ := json.Marshal(d)
		var decoded map[string]any
		json.Unmarshal(data, &decoded)
		if v, ok := decoded["related"]; !ok || v != nil {
			t.Errorf("related should encode as null: %s", data)
		}
	})

	t.Run("customer has no related record", func(t *testing.T) {
		e := newEnv(false)
		id := e.seed(category.Customer)

		d, err := e.system().Detail(context.Background(), id)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if d.Related != nil {
			t.Errorf("related = %#v, want nil", d.Related)
		}
	})

	t.Run("execution lookup failure is tolerated", func(t *testing.T) {
		e := newEnv(false)
		id := e.seed(category.Customer)
		e.executions.listErr = errors.New("timeout")

		d, err := e.system().Detail(context.Background(), id)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if d.Executions == nil || len(d.Executions) != 0 {
			t.Errorf("executions = %#v", d.Executions)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		e := newEnv(false)

		_, err := e.system().Detail(context.Background(), uuid.New())
		if !errors.Is(err, emails.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("executions after processing", func(t *testing.T) {
		e := newEnv(false)
		sys := e.system()

		out, err := sys.Process(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("Process: %v", err)
		}

		d, err := sys.Detail(context.Background(), out.EmailID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if len(d.Executions) != 1 || d.Executions[0].Status != executions.StatusCompleted {
			t.Errorf("executions = %+v", d.Executions)
		}
		if d.Executions[0].AgentType != *d.Email.Classification {
			t.Errorf("agent type %s != classification %s", d.Executions[0].AgentType, *d.Email.Classification)
		}
	})
}
