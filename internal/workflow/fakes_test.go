package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/internal/workflow"
	"github.com/JaimeStill/freightdesk/pkg/gateway"
)

var (
	fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	errDB    = errors.New("connection refused")
)

type call struct {
	prompt      string
	temperature float64
}

// fakeGateway answers classification prompts with label and every other
// prompt with reply.
type fakeGateway struct {
	mu       sync.Mutex
	label    string
	labelErr error
	reply    string
	replyErr error
	calls    []call
}

func (g *fakeGateway) Provider() gateway.Provider { return gateway.OpenRouter }

func (g *fakeGateway) Invoke(_ context.Context, prompt string, temperature float64) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call{prompt, temperature})

	if strings.Contains(prompt, "email classification expert") {
		return g.label, g.labelErr
	}
	return g.reply, g.replyErr
}

func (g *fakeGateway) last() call {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[len(g.calls)-1]
}

type fakePrompts struct {
	overrides map[prompts.Stage]string
	err       error
}

func (p *fakePrompts) Instructions(_ context.Context, stage prompts.Stage) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if text, ok := p.overrides[stage]; ok {
		return text, nil
	}
	return prompts.Instructions(stage)
}

func (p *fakePrompts) Spec(_ context.Context, stage prompts.Stage) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return prompts.Spec(stage)
}

type fakeEmails struct {
	createErr   error
	finalizeErr error
	created     []emails.CreateCommand
	finalized   map[uuid.UUID]emails.FinalizeCommand
}

func (s *fakeEmails) Create(_ context.Context, cmd emails.CreateCommand) (*emails.Email, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, cmd)
	return &emails.Email{
		ID:        uuid.New(),
		Subject:   cmd.Subject,
		Sender:    cmd.Sender,
		Recipient: cmd.Recipient,
		Body:      cmd.Body,
		Status:    cmd.Status,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}, nil
}

func (s *fakeEmails) Finalize(_ context.Context, id uuid.UUID, cmd emails.FinalizeCommand) (*emails.Email, error) {
	if s.finalizeErr != nil {
		return nil, s.finalizeErr
	}
	if s.finalized == nil {
		s.finalized = make(map[uuid.UUID]emails.FinalizeCommand)
	}
	s.finalized[id] = cmd
	c := cmd.Classification
	return &emails.Email{ID: id, Classification: &c, Status: cmd.Status}, nil
}

type fakeExecutions struct {
	err     error
	records []executions.CreateCommand
}

func (s *fakeExecutions) Create(_ context.Context, cmd executions.CreateCommand) (*executions.Execution, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.records = append(s.records, cmd)
	return &executions.Execution{ID: uuid.New(), EmailID: cmd.EmailID, AgentType: cmd.AgentType, Status: cmd.Status}, nil
}

type fakeShipments struct {
	err     error
	created []shipments.CreateCommand
	known   map[string]shipments.Shipment
}

func (s *fakeShipments) Create(_ context.Context, cmd shipments.CreateCommand) (*shipments.Shipment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, cmd)
	return &shipments.Shipment{ID: uuid.New(), TrackingNumber: cmd.TrackingNumber, Status: cmd.Status}, nil
}

func (s *fakeShipments) FindByTracking(_ context.Context, number string) (*shipments.Shipment, error) {
	if s.err != nil {
		return nil, s.err
	}
	sh, ok := s.known[number]
	if !ok {
		return nil, shipments.ErrNotFound
	}
	return &sh, nil
}

type fakeDocuments struct {
	err     error
	created []documents.CreateCommand
}

func (s *fakeDocuments) Create(_ context.Context, cmd documents.CreateCommand) (*documents.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, cmd)
	return &documents.Document{ID: uuid.New(), ValidationStatus: documents.ValidationStatus(cmd.Valid)}, nil
}

type fakeIssues struct {
	err     error
	created []issues.CreateCommand
}

func (s *fakeIssues) Create(_ context.Context, cmd issues.CreateCommand) (*issues.Issue, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, cmd)
	return &issues.Issue{ID: uuid.New(), Status: issues.InitialStatus(cmd.Escalate)}, nil
}

type harness struct {
	rt         *workflow.Runtime
	gw         *fakeGateway
	emails     *fakeEmails
	executions *fakeExecutions
	shipments  *fakeShipments
	documents  *fakeDocuments
	issues     *fakeIssues
}

func newHarness() *harness {
	h := &harness{
		gw:         &fakeGateway{},
		emails:     &fakeEmails{},
		executions: &fakeExecutions{},
		shipments:  &fakeShipments{},
		documents:  &fakeDocuments{},
		issues:     &fakeIssues{},
	}
	h.rt = &workflow.Runtime{
		Gateway:    h.gw,
		Prompts:    &fakePrompts{},
		Emails:     h.emails,
		Executions: h.executions,
		Shipments:  h.shipments,
		Documents:  h.documents,
		Issues:     h.issues,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:        func() time.Time { return fixedNow },
	}
	return h
}

func sampleEmail() workflow.Email {
	return workflow.Email{
		Subject:   "Need to ship 200kg steel beams from Houston to Rotterdam",
		Sender:    "client@x.com",
		Recipient: "ops@carrier.com",
		Body:      "Please book 12 crates, 2x1x1m each, ready next Monday.",
	}
}

func ptr[T any](v T) *T { return &v }
