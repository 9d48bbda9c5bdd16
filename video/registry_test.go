package video

import "testing"

type nopDriver struct {
	name string
}

func (d nopDriver) Name() string             { return d.name }
func (d nopDriver) Init() (Subsystem, error) { return nil, nil }

func register(t *testing.T, name string) {
	t.Helper()
	Register(name, func() Driver { return nopDriver{name: name} })
	t.Cleanup(func() { Unregister(name) })
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-driver"); err == nil {
		t.Fatal("Lookup() err = nil, want error")
	}
}

func TestRegisterLookup(t *testing.T) {
	register(t, "fake")

	d, err := Lookup("fake")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := d.Name(); got != "fake" {
		t.Fatalf("Name() = %q, want %q", got, "fake")
	}
}

func TestAvailableSorted(t *testing.T) {
	register(t, "zz")
	register(t, "aa")

	names := Available()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Available() = %v, not sorted", names)
		}
	}
}

func TestDefaultPrefersPriorityOrder(t *testing.T) {
	register(t, "headless")
	register(t, "sdl2")

	d, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got := d.Name(); got != "sdl2" {
		t.Fatalf("Default().Name() = %q, want %q", got, "sdl2")
	}
}

func TestDefaultFallsBackToAnyRegistered(t *testing.T) {
	register(t, "custom")

	d, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got := d.Name(); got != "custom" {
		t.Fatalf("Default().Name() = %q, want %q", got, "custom")
	}
}
