package api

import (
	"net/http"

	"github.com/JaimeStill/freightdesk/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, runtime *Runtime) {
	routes.Register(mux, groups(domain, runtime)...)
}

func groups(domain *Domain, runtime *Runtime) []routes.Group {
	return []routes.Group{
		domain.Intake.Handler(runtime.MaxBodySize).Routes(),
		domain.Emails.Handler().Routes(),
		domain.Executions.Handler().Routes(),
		domain.Shipments.Handler().Routes(),
		domain.Documents.Handler().Routes(),
		domain.Issues.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
	}
}
