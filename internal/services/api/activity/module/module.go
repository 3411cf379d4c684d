// Package module wires the activity feed into the API using modkit
package module

import (
	"net/http"
	"time"

	ghclient "homefeed/internal/adapters/github"
	modkit "homefeed/internal/modkit"
	"homefeed/internal/modkit/httpkit"
	str "homefeed/internal/platform/strings"
	activityhttp "homefeed/internal/services/api/activity/http"
	activitysvc "homefeed/internal/services/api/activity/service"
	"homefeed/internal/services/api/activity/source"
	contentdomain "homefeed/internal/services/content/domain"
	insightsdomain "homefeed/internal/services/insights/domain"
)

// Ports declares the cross-module dependencies the activity module needs
type Ports struct {
	Catalog  contentdomain.CatalogPort
	Insights insightsdomain.InsightsPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)

	svc activitysvc.Service
}

// New constructs an activity module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("activity"), modkit.WithPrefix("/activity")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Catalog == nil {
		panic("activity module requires Ports with a Catalog")
	}

	acfg := deps.Cfg.Prefix("CORE_ACTIVITY_")
	gcfg := deps.Cfg.Prefix("CORE_GITHUB_")

	var gh *ghclient.Client
	login := gcfg.MayString("LOGIN", "")
	if login != "" {
		gh = ghclient.NewClient(ghclient.Options{
			TokensCSV: gcfg.MayString("TOKENS", ""),
			Timeout:   gcfg.MayDuration("TIMEOUT", 10*time.Second),
		})
	}

	reg := source.NewRegistry(source.Deps{
		Insights: ports.Insights,
		GitHub:   gh,
		Login:    login,
		PerPage:  gcfg.MayInt("PER_PAGE", 30),
		Thresholds: source.Thresholds{
			ViewMilestones:     toInt64(acfg.MayInts("MILESTONES", nil)),
			CommentMilestones:  toInt64(acfg.MayInts("COMMENT_MILESTONES", nil)),
			EngagementMinViews: int64(acfg.MayInt("ENGAGEMENT_MIN_VIEWS", 0)),
			TrendingWindow:     acfg.MayDuration("TRENDING_WINDOW", 0),
			TrendingLimit:      acfg.MayInt("TRENDING_LIMIT", 0),
		},
	})

	svc := activitysvc.New(ports.Catalog, reg, activitysvc.Options{
		AdapterTimeout: acfg.MayDuration("ADAPTER_TIMEOUT", 5*time.Second),
	})

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		activityhttp.Register(r, m.svc)
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

// Ports returns the module port set; activity consumes ports, exposes none
func (m *Module) Ports() any { return nil }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

func toInt64(in []int) []int64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
