// Package module wires insights into the API using modkit
package module

import (
	"net/http"

	modkit "devgate/internal/modkit"
	"devgate/internal/modkit/httpkit"
	str "devgate/internal/platform/strings"
	insightshttp "devgate/internal/services/insights/http"
	insightsrepo "devgate/internal/services/insights/repo"
	insightssvc "devgate/internal/services/insights/service"
	usersdomain "devgate/internal/services/users/domain"
)

// Ports declares what insights needs from other modules
type Ports struct {
	Users usersdomain.ServicePort
}

// Module implements the insights module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc insightssvc.Service
}

// New constructs the insights module. The users port must be supplied via
// modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("insights"), modkit.WithPrefix("/insights")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok || in.Users == nil {
		panic("insights module requires Ports{Users} via modkit.WithPorts")
	}

	repo := insightsrepo.NewPG()
	svc := insightssvc.New(deps.PG, repo, in.Users)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptInsightsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		insightshttp.Register(r, m.svc)
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
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
