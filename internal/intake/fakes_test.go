package intake_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/intake"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/internal/workflow"
	"github.com/JaimeStill/freightdesk/pkg/gateway"
	"github.com/JaimeStill/freightdesk/pkg/lifecycle"
	"github.com/JaimeStill/freightdesk/pkg/storage"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// customerGateway classifies everything as customer and drafts a reply.
type customerGateway struct {
	calls int
}

func (g *customerGateway) Provider() gateway.Provider { return gateway.OpenAI }

func (g *customerGateway) Invoke(context.Context, string, float64) (string, error) {
	g.calls++
	if g.calls == 1 {
		return "customer", nil
	}
	return `{"replyText": "Thanks, we are on it.", "tone": "friendly"}`, nil
}

type memEmails struct {
	byID map[uuid.UUID]emails.Email
}

func (s *memEmails) Create(_ context.Context, cmd emails.CreateCommand) (*emails.Email, error) {
	e := emails.Email{
		ID:        uuid.New(),
		Subject:   cmd.Subject,
		Sender:    cmd.Sender,
		Recipient: cmd.Recipient,
		Body:      cmd.Body,
		Status:    cmd.Status,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	s.byID[e.ID] = e
	return &e, nil
}

func (s *memEmails) Finalize(_ context.Context, id uuid.UUID, cmd emails.FinalizeCommand) (*emails.Email, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, emails.ErrNotFound
	}
	c := cmd.Classification
	e.Classification = &c
	e.ClassificationFallback = cmd.Fallback
	e.Status = cmd.Status
	s.byID[id] = e
	return &e, nil
}

func (s *memEmails) Find(_ context.Context, id uuid.UUID) (*emails.Email, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, emails.ErrNotFound
	}
	return &e, nil
}

type memExecutions struct {
	byEmail map[uuid.UUID][]executions.Execution
	listErr error
}

func (s *memExecutions) Create(_ context.Context, cmd executions.CreateCommand) (*executions.Execution, error) {
	done := cmd.CompletedAt
	x := executions.Execution{
		ID:          uuid.New(),
		EmailID:     cmd.EmailID,
		AgentType:   cmd.AgentType,
		Status:      cmd.Status,
		Error:       cmd.Error,
		StartedAt:   cmd.StartedAt,
		CompletedAt: &done,
	}
	s.byEmail[cmd.EmailID] = append(s.byEmail[cmd.EmailID], x)
	return &x, nil
}

func (s *memExecutions) ListByEmail(_ context.Context, emailID uuid.UUID) ([]executions.Execution, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byEmail[emailID], nil
}

type memRelated struct {
	shipments map[uuid.UUID]shipments.Shipment
	documents map[uuid.UUID]documents.Document
	issues    map[uuid.UUID]issues.Issue
}

type intakeShipments struct{ m *memRelated }

func (f intakeShipments) FindByEmail(_ context.Context, id uuid.UUID) (*shipments.Shipment, error) {
	s, ok := f.m.shipments[id]
	if !ok {
		return nil, shipments.ErrNotFound
	}
	return &s, nil
}

type intakeDocuments struct{ m *memRelated }

func (f intakeDocuments) FindByEmail(_ context.Context, id uuid.UUID) (*documents.Document, error) {
	d, ok := f.m.documents[id]
	if !ok {
		return nil, documents.ErrNotFound
	}
	return &d, nil
}

type intakeIssues struct{ m *memRelated }

func (f intakeIssues) FindByEmail(_ context.Context, id uuid.UUID) (*issues.Issue, error) {
	i, ok := f.m.issues[id]
	if !ok {
		return nil, issues.ErrNotFound
	}
	return &i, nil
}

type memBlobs struct {
	mu      sync.Mutex
	enabled bool
	blobs   map[string][]byte
}

func (b *memBlobs) Start(*lifecycle.Coordinator) error { return nil }
func (b *memBlobs) Enabled() bool                      { return b.enabled }

func (b *memBlobs) Upload(_ context.Context, key string, r io.Reader, _ string) error {
	if !b.enabled {
		return storage.ErrDisabled
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[key] = data
	return nil
}

func (b *memBlobs) Download(_ context.Context, key string) (io.ReadCloser, error) {
	if !b.enabled {
		return nil, storage.ErrDisabled
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *memBlobs) Exists(_ context.Context, key string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.blobs[key]
	return ok, nil
}

type env struct {
	gw         *customerGateway
	emails     *memEmails
	executions *memExecutions
	related    *memRelated
	blobs      *memBlobs
	rt         *workflow.Runtime
}

func newEnv(archive bool) *env {
	e := &env{
		gw:         &customerGateway{},
		emails:     &memEmails{byID: map[uuid.UUID]emails.Email{}},
		executions: &memExecutions{byEmail: map[uuid.UUID][]executions.Execution{}},
		related: &memRelated{
			shipments: map[uuid.UUID]shipments.Shipment{},
			documents: map[uuid.UUID]documents.Document{},
			issues:    map[uuid.UUID]issues.Issue{},
		},
		blobs: &memBlobs{enabled: archive, blobs: map[string][]byte{}},
	}
	e.rt = &workflow.Runtime{
		Gateway:    e.gw,
		Emails:     e.emails,
		Executions: e.executions,
		Logger:     discard(),
		Now:        func() time.Time { return fixedNow },
	}
	return e
}

func (e *env) system() intake.System {
	return intake.New(e.rt, intake.Sources{
		Emails:     e.emails,
		Executions: e.executions,
		Shipments:  intakeShipments{e.related},
		Documents:  intakeDocuments{e.related},
		Issues:     intakeIssues{e.related},
		Storage:    e.blobs,
	}, discard())
}

func (e *env) seed(c category.Category) uuid.UUID {
	rec, _ := e.emails.Create(context.Background(), emails.CreateCommand{
		Subject:   "Seeded",
		Sender:    "a@b.com",
		Recipient: "c@d.com",
		Body:      "body",
		Status:    emails.StatusCompleted,
	})
	e.emails.Finalize(context.Background(), rec.ID, emails.FinalizeCommand{Classification: c, Status: emails.StatusCompleted})
	return rec.ID
}
