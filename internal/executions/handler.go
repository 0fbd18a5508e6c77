package executions

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/pkg/handlers"
	"github.com/JaimeStill/freightdesk/pkg/routes"
)

// Handler serves per-category agent statistics.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "executions"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/agents",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/status", Handler: h.Statuses},
			{Method: "GET", Pattern: "/status/{category}", Handler: h.Status},
		},
	}
}

func (h *Handler) Statuses(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Statuses(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	c, err := category.Parse(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	stats, err := h.sys.Status(r.Context(), c)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
