// Package module wires insights into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "homefeed/internal/modkit"
	"homefeed/internal/modkit/httpkit"
	str "homefeed/internal/platform/strings"
	"homefeed/internal/services/insights/domain"
	insightshttp "homefeed/internal/services/insights/http"
	insightsrepo "homefeed/internal/services/insights/repo"
	insightssvc "homefeed/internal/services/insights/service"
)

// Ports exposes the insights read surface to other modules
type Ports struct {
	Insights domain.InsightsPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc insightssvc.Service
}

// New constructs an insights module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("insights"), modkit.WithPrefix("/trending")}, opts...)...)

	ttl := deps.Cfg.MayDuration("CORE_INSIGHTS_CACHE_TTL", 5*time.Minute)
	window := deps.Cfg.MayDuration("CORE_INSIGHTS_TRENDING_WINDOW", 7*24*time.Hour)
	limit := deps.Cfg.MayInt("CORE_INSIGHTS_TRENDING_LIMIT", 10)

	svc := insightssvc.New(insightsrepo.NewCH(deps.CH), deps.RD, ttl)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Insights: svc},
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		insightshttp.Register(r, m.svc, insightshttp.Options{Window: window, Limit: limit})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
