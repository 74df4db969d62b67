package driver

import (
	"errors"
	"slices"
	"testing"
)

type stubFunctions struct {
	Functions
	name string
}

func TestRegistry(t *testing.T) {
	t.Cleanup(func() {
		Unregister("a")
		Unregister("b")
		Unregister(NamePlatform)
	})

	if fns := Get("a"); fns != nil {
		t.Fatalf("Get before register = %v, want nil", fns)
	}

	Register("a", func() Functions { return &stubFunctions{name: "a"} })
	Register("b", func() Functions { return &stubFunctions{name: "b"} })

	names := Available()
	if !slices.Contains(names, "a") || !slices.Contains(names, "b") {
		t.Errorf("Available() = %v, want to contain a and b", names)
	}

	fns := Get("a")
	stub, ok := fns.(*stubFunctions)
	if !ok || stub.name != "a" {
		t.Errorf("Get(a) = %#v, want stub a", fns)
	}

	Unregister("a")
	if fns := Get("a"); fns != nil {
		t.Errorf("Get after unregister = %v, want nil", fns)
	}
}

func TestDefaultPriority(t *testing.T) {
	t.Cleanup(func() {
		Unregister(NamePlatform)
		Unregister("other")
	})

	if _, err := Default(); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Default with empty registry = %v, want ErrNotAvailable", err)
	}

	Register("other", func() Functions { return &stubFunctions{name: "other"} })
	fns, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if stub := fns.(*stubFunctions); stub.name != "other" {
		t.Errorf("Default picked %q, want the only registered driver", stub.name)
	}

	// The platform driver outranks everything else.
	Register(NamePlatform, func() Functions { return &stubFunctions{name: NamePlatform} })
	fns, err = Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if stub := fns.(*stubFunctions); stub.name != NamePlatform {
		t.Errorf("Default picked %q, want %q", stub.name, NamePlatform)
	}
}
