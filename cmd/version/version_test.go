package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leefowlercu/ci-demo/internal/version"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	VersionCmd.SetOut(buf)
	VersionCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() { versionShort = false })

	if err := VersionCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	return buf.String()
}

func TestVersionCommandOutput(t *testing.T) {
	output := execute(t)

	for _, label := range []string{"Version:", "Git Commit:", "Build Date:"} {
		if !strings.Contains(output, label) {
			t.Errorf("version output missing label %q", label)
		}
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Errorf("version output has %d lines, expected 3", len(lines))
	}
}

func TestVersionCommandShort(t *testing.T) {
	output := execute(t, "--short")

	if got := strings.TrimSpace(output); got != version.Version() {
		t.Errorf("version --short = %q, want %q", got, version.Version())
	}
}
