package github

import (
	"context"
	"fmt"
	"time"

	perr "homefeed/internal/platform/errors"

	"github.com/mmcdole/gofeed"
)

// AtomEntry is one entry from a user's public activity feed
type AtomEntry struct {
	ID        string
	Title     string
	Link      string
	Published time.Time
}

// FetchAtomEvents reads the public Atom feed for a user.
// It needs no token, so it serves as the fallback when the REST client
// is unauthenticated and the event quota is too tight to be useful
func FetchAtomEvents(ctx context.Context, login string) ([]AtomEntry, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = defaultUA

	url := fmt.Sprintf("https://github.com/%s.atom", login)
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github atom fetch failed")
	}

	out := make([]AtomEntry, 0, len(feed.Items))
	for _, it := range feed.Items {
		e := AtomEntry{
			ID:    it.GUID,
			Title: it.Title,
			Link:  it.Link,
		}
		if it.PublishedParsed != nil {
			e.Published = it.PublishedParsed.UTC()
		} else if it.UpdatedParsed != nil {
			e.Published = it.UpdatedParsed.UTC()
		}
		out = append(out, e)
	}
	return out, nil
}
