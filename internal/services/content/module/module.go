// Package module wires the content catalog into the service using modkit
package module

import (
	modkit "homefeed/internal/modkit"
	"homefeed/internal/modkit/httpkit"
	"homefeed/internal/services/content/domain"
	contentrepo "homefeed/internal/services/content/repo"
	contentsvc "homefeed/internal/services/content/service"
)

// Ports exposes the content catalog to other modules
type Ports struct {
	Catalog domain.CatalogPort
}

// Module implements the modkit.Module interface
// content has no routes of its own; it exists for its Catalog port
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports

	svc contentsvc.Service
}

// New constructs a content module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("content")}, opts...)...)

	svc := contentsvc.New(deps.PG, contentrepo.NewPG())

	return &Module{
		deps:  deps,
		name:  b.Name,
		ports: Ports{Catalog: svc},
		svc:   svc,
	}
}

// MountRoutes implements the modkit.Module interface; content mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return m.name }
