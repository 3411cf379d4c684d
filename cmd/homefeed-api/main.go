// @title         Homefeed API
// @version       0.1.0
// @description   Aggregated activity feed across site content and external sources

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"homefeed/internal/modkit/repokit"
	"homefeed/internal/platform/config"
	"homefeed/internal/platform/logger"
	phttp "homefeed/internal/platform/net/http"
	"homefeed/internal/platform/store"

	"homefeed/internal/services/api"
)

func main() {
	// local dev convenience; real deployments set the environment directly
	_ = godotenv.Load()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	rdCfg := root.Prefix("SERVICE_REDIS_")      // rdCfg lives under SERVICE_REDIS_*

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres + clickhouse + redis)
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "homefeed",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled: chCfg.MayBool("ENABLED", chCfg.MayString("DBURL", "") != ""),
				URL:     chCfg.MayString("DBURL", ""),
				Role:    "api",
			},
			RDS: store.RedisConfig{
				Enabled: rdCfg.MayBool("ENABLED", rdCfg.MayString("ADDR", "") != ""),
				Addr:    rdCfg.MayString("ADDR", "localhost:6379"),
				DB:      rdCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_BIND / CORE_API_PORT)
	srv := phttp.NewServer(phttp.ServerOptions{
		Addr: apiCfg.MayString("BIND", "0.0.0.0") + apiCfg.MustPort("PORT"),
	})

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
			RateLimit:     int64(apiCfg.MayInt("RATE_LIMIT", 60)),
			RateWindow:    apiCfg.MayDuration("RATE_WINDOW", time.Minute),
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
