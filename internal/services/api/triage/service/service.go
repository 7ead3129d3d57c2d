// Package service contains triage workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"issuegate/internal/core/spam"
	"issuegate/internal/platform/logger"
	"issuegate/internal/services/api/triage/domain"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	base     spam.Config
	detector *spam.Detector
}

// Options control service behavior
type Options struct {
	// Config is the server-side detector configuration; zero fields use defaults
	Config spam.Config
}

// New constructs the service
func New(opt Options) *Svc {
	d := spam.New(opt.Config)
	return &Svc{base: d.Config(), detector: d}
}

// Config returns the merged server-side configuration
func (s *Svc) Config() spam.Config { return s.base }

// Check classifies one issue body, applying any per-request overrides
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	d := s.detector
	if in.Config != nil {
		d = spam.New(in.Config.ToConfig(s.base))
	}

	v := d.Check(in.Body)

	id := uuid.NewString()
	logger.C(ctx).Debug().
		Str("check_id", id).
		Bool("is_spam", v.IsSpam).
		Int("score", v.Score).
		Int("sections", len(v.Sections)).
		Msg("triage check")

	return domain.CheckResult{
		CheckID:         id,
		DetectorVersion: spam.Version,
		Verdict:         v,
	}, nil
}
