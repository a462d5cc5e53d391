package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	embedding EmbeddingChecker
}

// New creates a Service. embedding can be nil.
func New(db DBPinger, embedding EmbeddingChecker) *Service {
	return &Service{db: db, embedding: embedding}
}

// component pairs a check name with the function that verifies it.
type component struct {
	name  string
	check func(context.Context) error
}

// components lists the checks to run. The embedding check is skipped when
// no provider is configured.
func (s *Service) components() []component {
	out := []component{
		{name: "database", check: s.db.Ping},
	}
	if s.embedding != nil {
		out = append(out, component{name: "embedding", check: s.embedding.HealthCheck})
	}
	return out
}

// Check runs health checks against all components. Any failing component
// degrades the aggregate status.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	for _, c := range s.components() {
		if err := c.check(ctx); err != nil {
			checks[c.name] = CheckError
			status = Degraded
			continue
		}
		checks[c.name] = CheckOK
	}

	return Report{Status: status, Checks: checks}
}
