package executions

import "github.com/JaimeStill/freightdesk/internal/category"

// Compute derives Stats for c from records. It does not filter by agent
// type; callers pass the records of one category.
func Compute(c category.Category, records []Execution) Stats {
	stats := Stats{AgentType: c, TotalExecutions: len(records)}

	var (
		timed   int
		totalMS float64
		last    *Execution
	)

	for i := range records {
		rec := &records[i]

		switch rec.Status {
		case StatusCompleted:
			stats.SuccessfulExecutions++
		case StatusFailed:
			stats.FailedExecutions++
		}

		if rec.CompletedAt != nil {
			timed++
			totalMS += float64(rec.CompletedAt.Sub(rec.StartedAt).Microseconds()) / 1000
		}

		if last == nil || rec.StartedAt.After(last.StartedAt) {
			last = rec
		}
	}

	if timed > 0 {
		stats.AverageExecutionTime = totalMS / float64(timed)
	}

	if last != nil {
		stats.LastExecution = &LastExecution{
			Timestamp: last.StartedAt,
			Status:    last.Status,
		}
	}

	return stats
}
