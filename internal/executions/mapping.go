package executions

import (
	"encoding/json"

	"github.com/JaimeStill/freightdesk/pkg/query"
	"github.com/JaimeStill/freightdesk/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agent_executions", "x").
	Project("id", "ID").
	Project("email_id", "EmailID").
	Project("agent_type", "AgentType").
	Project("status", "Status").
	Project("input", "Input").
	Project("output", "Output").
	Project("error", "Error").
	Project("started_at", "StartedAt").
	Project("completed_at", "CompletedAt")

var defaultSort = query.SortField{
	Field:      "StartedAt",
	Descending: true,
}

func scanExecution(s repository.Scanner) (Execution, error) {
	var (
		e      Execution
		input  repository.JSON[json.RawMessage]
		output repository.JSON[json.RawMessage]
	)
	err := s.Scan(
		&e.ID,
		&e.EmailID,
		&e.AgentType,
		&e.Status,
		&input,
		&output,
		&e.Error,
		&e.StartedAt,
		&e.CompletedAt,
	)
	e.Input = input.V
	e.Output = output.V
	return e, err
}

// jsonArg binds v as jsonb, or SQL NULL when v is nil.
func jsonArg(v any) any {
	if v == nil {
		return nil
	}
	return repository.JSON[any]{V: v}
}
