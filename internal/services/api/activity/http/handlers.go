// Package http provides http transport for the activity feed
package http

import (
	stdhttp "net/http"

	"homefeed/internal/modkit/httpkit"
	phttp "homefeed/internal/platform/net/http"
	"homefeed/internal/platform/net/http/bind"
	"homefeed/internal/services/api/activity/domain"
	svc "homefeed/internal/services/api/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetResponse(r, "/", h.feed)
	httpkit.Get(r, "/sources", h.sources)
}

type handlers struct{ svc svc.Service }

// @Summary Aggregated activity feed across every content source
// @Tags Activity
// @Produce json
// @Param sources query string false "comma separated source subset"
// @Param limit query int false "page size, default 50, max 100"
// @Param after query string false "exclusive RFC 3339 lower bound"
// @Param before query string false "exclusive RFC 3339 upper bound"
// @Success 200 {object} domain.Feed "ok"
// @Failure 400 {object} phttp.ErrorBody "bad parameters"
// @Failure 429 {object} phttp.ErrorBody "rate limited"
// @Router /activity [get]
func (h *handlers) feed(r *stdhttp.Request) phttp.Response {
	in, err := bind.ParseQuery[domain.FeedInput](r)
	if err != nil {
		return phttp.Error(err)
	}
	feed, err := h.svc.Feed(r.Context(), in)
	if err != nil {
		return phttp.Error(err)
	}
	if feed.Activities == nil {
		feed.Activities = []domain.Item{}
	}
	return phttp.OK(feed)
}

// @Summary Enabled sources with their current item counts
// @Tags Activity
// @Produce json
// @Success 200 {object} domain.SourceList "ok"
// @Router /activity/sources [get]
func (h *handlers) sources(r *stdhttp.Request) (any, error) {
	return h.svc.Sources(r.Context())
}
