package profile

import "testing"

func TestProfilerDisabled(t *testing.T) {
	t.Parallel()

	for _, p := range []Profiler{
		{},
		{Mode: "no-such-mode", Path: t.TempDir(), Quiet: true},
	} {
		s := p.Start()
		if s == nil {
			t.Fatalf("Start(%+v) returned nil", p)
		}

		s.Stop()
	}
}
