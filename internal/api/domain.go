package api

import (
	"github.com/JaimeStill/freightdesk/internal/documents"
	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/internal/executions"
	"github.com/JaimeStill/freightdesk/internal/intake"
	"github.com/JaimeStill/freightdesk/internal/issues"
	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/internal/shipments"
	"github.com/JaimeStill/freightdesk/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Emails     emails.System
	Executions executions.System
	Shipments  shipments.System
	Documents  documents.System
	Issues     issues.System
	Prompts    prompts.System
	Intake     intake.System
}

// NewDomain creates all domain systems from the API runtime and wires the
// record stores into the email workflow.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	d := &Domain{
		Emails:     emails.New(db, runtime.Logger, runtime.Pagination),
		Executions: executions.New(db, runtime.Logger),
		Shipments:  shipments.New(db, runtime.Logger, runtime.Pagination),
		Documents:  documents.New(db, runtime.Logger, runtime.Pagination),
		Issues:     issues.New(db, runtime.Logger, runtime.Pagination),
		Prompts:    prompts.New(db, runtime.Logger, runtime.Pagination),
	}

	wf := &workflow.Runtime{
		Gateway:    runtime.Gateway,
		Prompts:    d.Prompts,
		Emails:     d.Emails,
		Executions: d.Executions,
		Shipments:  d.Shipments,
		Documents:  d.Documents,
		Issues:     d.Issues,
		Logger:     runtime.Logger.With("system", "workflow"),
	}

	d.Intake = intake.New(wf, intake.Sources{
		Emails:     d.Emails,
		Executions: d.Executions,
		Shipments:  d.Shipments,
		Documents:  d.Documents,
		Issues:     d.Issues,
		Storage:    runtime.Storage,
	}, runtime.Logger)

	return d
}
