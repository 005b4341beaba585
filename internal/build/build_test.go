package build

import "testing"

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Fatal("Version() is empty")
	}

	saved := version
	t.Cleanup(func() { version = saved })
	version = "9.9.9"
	if got := Version(); got != "9.9.9" {
		t.Errorf("Version() = %q, want ldflags override", got)
	}
}
