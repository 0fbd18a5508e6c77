// Package executions records one audit row per handled email and derives
// per-category statistics from them.
package executions

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/freightdesk/internal/category"
)

// Execution outcome states.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Execution is the audit record of one handler run.
type Execution struct {
	ID          uuid.UUID         `json:"id"`
	EmailID     uuid.UUID         `json:"email_id"`
	AgentType   category.Category `json:"agent_type"`
	Status      string            `json:"status"`
	Input       json.RawMessage   `json:"input"`
	Output      json.RawMessage   `json:"output"`
	Error       *string           `json:"error"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt *time.Time        `json:"completed_at"`
}

// CreateCommand carries one handler outcome. Input and Output are encoded
// as JSON; a nil Output is stored as NULL.
type CreateCommand struct {
	EmailID     uuid.UUID
	AgentType   category.Category
	Status      string
	Input       any
	Output      any
	Error       *string
	StartedAt   time.Time
	CompletedAt time.Time
}

// Stats summarizes the executions of one category.
type Stats struct {
	AgentType            category.Category `json:"agent_type"`
	TotalExecutions      int               `json:"total_executions"`
	SuccessfulExecutions int               `json:"successful_executions"`
	FailedExecutions     int               `json:"failed_executions"`
	// AverageExecutionTime is the mean duration in milliseconds.
	AverageExecutionTime float64        `json:"average_execution_time"`
	LastExecution        *LastExecution `json:"last_execution,omitempty"`
}

// LastExecution identifies the most recently started execution.
type LastExecution struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}
