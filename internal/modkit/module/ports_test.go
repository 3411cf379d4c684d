package module_test

import (
	"testing"

	phttp "homefeed/internal/platform/net/http"

	"homefeed/internal/modkit/module"
)

type greeter interface{ Greet() string }

type greeterImpl struct{}

func (greeterImpl) Greet() string { return "hi" }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) Name() string             { return m.name }

type portBundle struct {
	Greeter greeter
	Extra   int
}

func TestPortsOf_DirectAndStructField(t *testing.T) {
	direct := fakeModule{name: "direct", ports: greeterImpl{}}
	if g, ok := module.PortsOf[greeter](direct); !ok || g.Greet() != "hi" {
		t.Fatalf("direct: ok=%v", ok)
	}

	bundled := fakeModule{name: "bundled", ports: portBundle{Greeter: greeterImpl{}}}
	if g, ok := module.PortsOf[greeter](bundled); !ok || g.Greet() != "hi" {
		t.Fatalf("bundled: ok=%v", ok)
	}

	empty := fakeModule{name: "empty"}
	if _, ok := module.PortsOf[greeter](empty); ok {
		t.Fatal("nil ports should not match")
	}
}

func TestMustPortsOf_PanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	module.MustPortsOf[greeter](fakeModule{name: "empty"})
}

func TestRegistryRoundTrip(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	module.Register("content", portBundle{Greeter: greeterImpl{}})
	got, ok := module.PortsAs[portBundle]("content")
	if !ok || got.Greeter == nil {
		t.Fatalf("ok=%v got=%+v", ok, got)
	}
	if _, ok := module.PortsAs[portBundle]("missing"); ok {
		t.Fatal("missing name should not resolve")
	}
}
