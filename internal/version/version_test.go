package version

import (
	"testing"

	"github.com/fatih/color"
)

func withPlainColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestLine(t *testing.T) {
	withPlainColor(t)
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"0.1.0-dev", "", "", "monkey 0.1.0-dev"},
		{"1.2.3", "abc123", "", "monkey 1.2.3 (abc123)"},
		{"1.2.3", "abc123", "2026-01-15", "monkey 1.2.3 (abc123) built 2026-01-15"},
		{"weird", "", "", "monkey weird"},
	}
	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := Line(); got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}

func TestColoredKeepsText(t *testing.T) {
	withPlainColor(t)
	if got := Colored(); got != Version {
		t.Fatalf("Colored() = %q, want %q", got, Version)
	}
}
