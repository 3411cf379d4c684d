package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"homefeed/internal/platform/net/middleware"
)

// CommonStack returns a baseline per service middleware slice
// compose with the rate limiter or cache headers as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogRequestID(),

		// safety
		middleware.RecoverJSON,

		// observability
		middleware.AccessLog,

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
