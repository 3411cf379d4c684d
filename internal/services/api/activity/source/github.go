package source

import (
	"context"
	"encoding/json"
	"fmt"

	ghclient "homefeed/internal/adapters/github"
	"homefeed/internal/services/api/activity/domain"
)

// githubAdapter surfaces recent public GitHub activity for the configured login.
// With a token it reads the REST events API; tokenless it falls back to the
// public Atom feed, whose quota is not metered
type githubAdapter struct {
	client  *ghclient.Client
	login   string
	perPage int
}

func (githubAdapter) Source() domain.Source { return domain.SourceGitHub }

func (a githubAdapter) Collect(ctx context.Context, _ domain.Catalog) ([]domain.Item, error) {
	if !a.client.Authenticated() {
		return a.collectAtom(ctx)
	}

	events, _, _, err := a.client.ListPublicEvents(ctx, a.login, a.perPage, "")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(events))
	for _, ev := range events {
		item := domain.Item{
			ID:        fmt.Sprintf("github:%s", ev.ID),
			Type:      domain.SourceGitHub,
			Title:     eventTitle(ev),
			URL:       fmt.Sprintf("https://github.com/%s", ev.Repo.Name),
			Timestamp: ev.CreatedAt,
			Meta:      map[string]any{"event": ev.Type, "repo": ev.Repo.Name},
		}
		out = append(out, item)
	}
	return out, nil
}

func (a githubAdapter) collectAtom(ctx context.Context) ([]domain.Item, error) {
	entries, err := ghclient.FetchAtomEvents(ctx, a.login)
	if err != nil {
		return nil, err
	}
	if a.perPage > 0 && len(entries) > a.perPage {
		entries = entries[:a.perPage]
	}
	out := make([]domain.Item, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" || e.Published.IsZero() {
			continue
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("github:%s", e.ID),
			Type:      domain.SourceGitHub,
			Title:     e.Title,
			URL:       e.Link,
			Timestamp: e.Published,
		})
	}
	return out, nil
}

// eventTitle renders a human line for the common public event types
func eventTitle(ev ghclient.Event) string {
	switch ev.Type {
	case "PushEvent":
		var p ghclient.PushPayload
		if err := json.Unmarshal(ev.Payload, &p); err == nil && p.Size > 0 {
			noun := "commits"
			if p.Size == 1 {
				noun = "commit"
			}
			return fmt.Sprintf("Pushed %d %s to %s", p.Size, noun, ev.Repo.Name)
		}
		return fmt.Sprintf("Pushed to %s", ev.Repo.Name)
	case "ReleaseEvent":
		var p ghclient.ReleasePayload
		if err := json.Unmarshal(ev.Payload, &p); err == nil && p.Release.TagName != "" {
			return fmt.Sprintf("Released %s of %s", p.Release.TagName, ev.Repo.Name)
		}
		return fmt.Sprintf("Published a release of %s", ev.Repo.Name)
	case "CreateEvent":
		var p ghclient.CreatePayload
		if err := json.Unmarshal(ev.Payload, &p); err == nil && p.RefType != "" {
			if p.RefType == "repository" {
				return fmt.Sprintf("Created %s", ev.Repo.Name)
			}
			return fmt.Sprintf("Created %s %s in %s", p.RefType, p.Ref, ev.Repo.Name)
		}
		return fmt.Sprintf("Created in %s", ev.Repo.Name)
	case "WatchEvent":
		return fmt.Sprintf("Starred %s", ev.Repo.Name)
	case "ForkEvent":
		return fmt.Sprintf("Forked %s", ev.Repo.Name)
	case "IssuesEvent":
		return fmt.Sprintf("Updated an issue in %s", ev.Repo.Name)
	case "PullRequestEvent":
		return fmt.Sprintf("Updated a pull request in %s", ev.Repo.Name)
	case "IssueCommentEvent":
		return fmt.Sprintf("Commented on an issue in %s", ev.Repo.Name)
	default:
		return fmt.Sprintf("Activity in %s", ev.Repo.Name)
	}
}
