// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"homefeed/internal/platform/config"
	"homefeed/internal/platform/logger"
	"homefeed/internal/platform/net/middleware"
	phttp "homefeed/internal/platform/net/http"
	"homefeed/internal/platform/store"
	"homefeed/internal/platform/store/rd"

	modkit "homefeed/internal/modkit"
	"homefeed/internal/modkit/httpkit"
	"homefeed/internal/modkit/module"
	"homefeed/internal/modkit/swaggerkit"

	activitymod "homefeed/internal/services/api/activity/module"
	contentmod "homefeed/internal/services/content/module"
	insightsmod "homefeed/internal/services/insights/module"
)

// feedCacheControl is sent on every activity feed response so CDN edges
// can serve for 5 minutes and revalidate in the background for 10 more
const feedCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool

	// RateLimit is the per client IP quota; window defaults to a minute
	RateLimit  int64
	RateWindow time.Duration
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RD:  opt.Store.RD,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// content owns the catalog port, insights owns the stats port;
	// the activity module consumes both. Insights needs clickhouse, so
	// without it the feed runs on the catalog (and github) sources only
	content := contentmod.New(deps)
	ports := activitymod.Ports{
		Catalog: module.MustPortsOf[contentmod.Ports](content).Catalog,
	}

	mods := []module.Module{content}
	if deps.CH != nil {
		insights := insightsmod.New(deps)
		ports.Insights = module.MustPortsOf[insightsmod.Ports](insights).Insights
		mods = append(mods, insights)
	}

	activity := activitymod.New(
		deps,
		modkit.WithPorts(ports),
		modkit.WithMiddlewares(middleware.CacheControl(feedCacheControl)),
	)
	mods = append(mods, activity)

	stack := httpkit.CommonStack()
	if lim := limiter(opt); lim != nil {
		stack = append(stack, middleware.RateLimit(lim))
	}

	httpkit.MountAPI(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// limiter builds the redis fixed-window limiter, or nil when redis is off
func limiter(opt Options) middleware.LimiterPort {
	if opt.Store.RD == nil || opt.RateLimit <= 0 {
		return nil
	}
	window := opt.RateWindow
	if window <= 0 {
		window = time.Minute
	}
	lim := rd.NewLimiter(opt.Store.RD, opt.RateLimit, window)
	return middleware.LimiterFunc(func(ctx context.Context, key string) (middleware.LimitDecision, error) {
		ok, retry, err := lim.Allow(ctx, key)
		if err != nil {
			return middleware.LimitDecision{}, err
		}
		return middleware.LimitDecision{
			Allowed:    ok,
			RetryAfter: time.Duration(retry) * time.Second,
		}, nil
	})
}
