package domain

import "context"

// ServicePort is the triage service contract consumed by transports
type ServicePort interface {
	Check(ctx context.Context, in CheckInput) (CheckResult, error)
}
