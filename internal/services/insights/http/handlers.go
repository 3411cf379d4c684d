// Package http provides http transport for insights
package http

import (
	stdhttp "net/http"
	"time"

	"homefeed/internal/modkit/httpkit"
	"homefeed/internal/services/insights/domain"
	svc "homefeed/internal/services/insights/service"
)

// Options tunes the trending endpoint
type Options struct {
	Window time.Duration
	Limit  int
}

// Register mounts insights endpoints on the given router
func Register(r httpkit.Router, s svc.Service, opt Options) {
	if opt.Window <= 0 {
		opt.Window = 7 * 24 * time.Hour
	}
	if opt.Limit <= 0 {
		opt.Limit = 10
	}
	h := &handlers{svc: s, opt: opt}
	httpkit.Get(r, "/", h.trending)
}

type handlers struct {
	svc svc.Service
	opt Options
}

type trendingBody struct {
	Success  bool                  `json:"success"`
	Count    int                   `json:"count"`
	Trending []domain.TrendingPage `json:"trending"`
}

// @Summary Posts ranked by views in the trailing window
// @Tags Insights
// @Produce json
// @Success 200 {object} trendingBody "ok"
// @Router /trending [get]
func (h *handlers) trending(r *stdhttp.Request) (any, error) {
	pages, err := h.svc.Trending(r.Context(), h.opt.Window, h.opt.Limit)
	if err != nil {
		return nil, err
	}
	if pages == nil {
		pages = []domain.TrendingPage{}
	}
	return trendingBody{Success: true, Count: len(pages), Trending: pages}, nil
}
