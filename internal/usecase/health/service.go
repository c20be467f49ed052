package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an auxiliary check failed while the catalog answers.
	Degraded Status = "degraded"
	// Unhealthy indicates the catalog itself is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

const catalogCheck = "catalog"

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogPinger
	extra   map[string]Checker
}

// Option configures a Service.
type Option func(*Service)

// WithCheck registers an auxiliary check under name.
func WithCheck(name string, c Checker) Option {
	return func(s *Service) {
		if name != "" && name != catalogCheck && c != nil {
			s.extra[name] = c
		}
	}
}

// New creates a Service.
func New(catalog CatalogPinger, opts ...Option) *Service {
	s := &Service{catalog: catalog, extra: make(map[string]Checker)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check runs every probe. A catalog failure is Unhealthy; any other failure is Degraded.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.extra)+1)
	checks[catalogCheck] = result(s.catalog.Ping(ctx))

	for _, name := range s.names() {
		checks[name] = result(s.extra[name](ctx))
	}

	status := Healthy
	switch {
	case checks[catalogCheck] == CheckError:
		status = Unhealthy
	default:
		for _, v := range checks {
			if v == CheckError {
				status = Degraded
				break
			}
		}
	}

	return Report{Status: status, Checks: checks}
}

func (s *Service) names() []string {
	names := make([]string, 0, len(s.extra))
	for name := range s.extra {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
