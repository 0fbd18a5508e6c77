package intake

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/emails"
	"github.com/JaimeStill/freightdesk/pkg/handlers"
	"github.com/JaimeStill/freightdesk/pkg/routes"
	"github.com/JaimeStill/freightdesk/pkg/validation"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid email id")
)

// Handler serves email submission, the email detail view, and the archive.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "intake"),
		maxBodySize: maxBodySize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Children: []routes.Group{
			{
				Prefix: "/emails",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "/process", Handler: h.Process},
					{Method: "GET", Pattern: "/{id}", Handler: h.Detail},
				},
			},
			{
				Prefix: "/archive",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/{id}", Handler: h.Archived},
				},
			},
		},
	}
}

// Process runs a submitted email through the workflow. The response is 200
// whenever the email was stored, with success reporting the handler outcome.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidBody)
		return
	}

	out, err := h.sys.Process(r.Context(), sub)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, verr)
			return
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

// Detail returns an email with its executions and related record.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	d, err := h.sys.Detail(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, emails.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, d)
}

func (h *Handler) Archived(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	a, err := h.sys.Archived(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}
