package version

import "testing"

func TestBuildMetadataDefaults(t *testing.T) {
	// All build metadata defaults to "unknown" until set via ldflags.
	for name, value := range map[string]string{
		"Version":   Version,
		"BuildTime": BuildTime,
		"GitCommit": GitCommit,
	} {
		if value == "" {
			t.Errorf("%s should not be empty", name)
		}
	}
}

func TestStringIncludesBuildMetadataWhenSet(t *testing.T) {
	if got := String(); got != Version {
		t.Errorf("default String() = %q, want %q", got, Version)
	}

	origCommit, origTime := GitCommit, BuildTime
	defer func() { GitCommit, BuildTime = origCommit, origTime }()
	GitCommit = "abc1234"
	BuildTime = "2026-08-31T10:00:00Z"

	got := String()
	want := Version + " (commit abc1234, built 2026-08-31T10:00:00Z)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
