// Package module wires triage into the API using modkit
package module

import (
	"net/http"

	modkit "issuegate/internal/modkit"
	"issuegate/internal/modkit/httpkit"

	thttp "issuegate/internal/services/api/triage/http"
	tsvc "issuegate/internal/services/api/triage/service"
)

// Module implements the triage API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *tsvc.Svc
}

// Ports exposes the triage service for cross module wiring
type Ports struct {
	Checker tsvc.Service
}

// New constructs the triage module (config-driven, parity with other API modules)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("triage"),
		modkit.WithPrefix("/triage"),
	}, opts...)...)

	svc := tsvc.New(tsvc.Options{
		Config: FromConfig(deps.Cfg),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Checker: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		thttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
