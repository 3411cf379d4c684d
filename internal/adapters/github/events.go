package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ListPublicEvents returns a page of public events for a user with optional etag.
// The bool return reports 304 Not Modified (cached copy still valid)
func (c *Client) ListPublicEvents(
	ctx context.Context,
	login string,
	perPage int,
	etag string,
) ([]Event, string, bool, error) {
	if perPage <= 0 || perPage > 100 {
		perPage = 30
	}
	path := fmt.Sprintf("/users/%s/events/public?per_page=%d", login, perPage)
	resp, err := c.Do(ctx, http.MethodGet, path, etag)
	if err != nil {
		return nil, "", false, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	if resp.StatusCode == http.StatusNotModified {
		return nil, resp.Header.Get("ETag"), true, nil
	}

	var out []Event
	lim := io.LimitReader(resp.Body, 2<<20)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, "", false, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, "", false, err
	}
	return out, resp.Header.Get("ETag"), false, nil
}
