//go:build integration_pg
// +build integration_pg

package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"homefeed/internal/platform/store"
	contentrepo "homefeed/internal/services/content/repo"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const schema = `
create table posts (
	id uuid primary key,
	slug text not null unique,
	title text not null,
	summary text not null default '',
	url text not null default '',
	tags text[] not null default '{}',
	views bigint not null default 0,
	published_at timestamptz,
	updated_at timestamptz not null default now()
);
create table projects (
	id uuid primary key,
	slug text not null unique,
	title text not null,
	description text not null default '',
	url text not null default '',
	repo_url text not null default '',
	featured boolean not null default false,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
create table changelog_entries (
	id uuid primary key,
	version text not null default '',
	title text not null,
	body text not null default '',
	url text not null default '',
	released_at timestamptz not null default now()
);
`

func TestCatalogQueries_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "homefeed-pg-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("schema: %v", err)
	}

	seed := []string{
		`insert into posts (id, slug, title, summary, tags, views, published_at)
		 values (gen_random_uuid(), 'go-tips', 'Go tips', 'Short tips', '{go,tips}', 1200, '2025-03-01T10:00:00Z')`,
		`insert into posts (id, slug, title, published_at)
		 values (gen_random_uuid(), 'older', 'Older post', '2025-01-01T10:00:00Z')`,
		`insert into posts (id, slug, title) values (gen_random_uuid(), 'draft', 'Draft post')`,
		`insert into projects (id, slug, title, featured, created_at)
		 values (gen_random_uuid(), 'homefeed', 'Homefeed', true, '2025-02-01T10:00:00Z')`,
		`insert into changelog_entries (id, version, title, released_at)
		 values (gen_random_uuid(), 'v1.0.0', 'First release', '2025-02-15T10:00:00Z')`,
	}
	for _, sql := range seed {
		if _, err := st.PG.Exec(ctx, sql); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	repo := contentrepo.NewPG().Bind(st.PG)

	posts, err := repo.Posts(ctx, 0)
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("posts: %+v", posts)
	}
	if posts[0].Slug != "go-tips" || posts[1].Slug != "older" {
		t.Fatalf("order: %+v", posts)
	}
	if posts[0].Views != 1200 || len(posts[0].Tags) != 2 {
		t.Fatalf("post fields: %+v", posts[0])
	}

	projects, err := repo.Projects(ctx, 0)
	if err != nil || len(projects) != 1 || !projects[0].Featured {
		t.Fatalf("projects: %+v err %v", projects, err)
	}

	entries, err := repo.Changelog(ctx, 0)
	if err != nil || len(entries) != 1 || entries[0].Version != "v1.0.0" {
		t.Fatalf("changelog: %+v err %v", entries, err)
	}
}
