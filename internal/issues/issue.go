// Package issues tracks problems raised to management from inbound email.
package issues

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Issue statuses.
const (
	StatusOpen      = "open"
	StatusEscalated = "escalated"
	StatusResolved  = "resolved"
)

// Severity levels, lowest first.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

var severities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Issue is a management issue raised from an email.
type Issue struct {
	ID                 uuid.UUID  `json:"id"`
	EmailID            uuid.UUID  `json:"email_id"`
	Severity           string     `json:"severity"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	RecommendedActions []string   `json:"recommended_actions"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	ResolvedAt         *time.Time `json:"resolved_at"`
}

// CreateCommand inserts an issue. Escalate selects StatusEscalated over
// StatusOpen.
type CreateCommand struct {
	EmailID            uuid.UUID
	Severity           string
	Title              string
	Description        string
	RecommendedActions []string
	Escalate           bool
}

// NormalizeSeverity lower-cases s and maps unknown levels to medium.
func NormalizeSeverity(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if slices.Contains(severities, s) {
		return s
	}
	return SeverityMedium
}

// InitialStatus returns the status a new issue is stored with.
func InitialStatus(escalate bool) string {
	if escalate {
		return StatusEscalated
	}
	return StatusOpen
}
