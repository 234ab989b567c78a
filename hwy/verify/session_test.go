package verify

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moduleRoot is where go build runs for the image builds.
func moduleRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

func skipUnlessBuilds(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("builds image binaries")
	}
	if hwy.DispatchDisabled() {
		t.Skip("the accelerated image cannot be built with dispatch disabled")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
}

func TestBuildFailure(t *testing.T) {
	skipUnlessBuilds(t)
	_, err := Build(context.Background(), BuildOptions{
		Package: "./cmd/does-not-exist",
		Dir:     t.TempDir(),
		Name:    "broken",
		WorkDir: moduleRoot(t),
	})
	assert.ErrorContains(t, err, "go build")
}

func TestSession(t *testing.T) {
	skipUnlessBuilds(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := DefaultConfig()
	cfg.ModuleDir = moduleRoot(t)
	cfg.WorkDir = t.TempDir()
	rep, err := (&Session{Config: cfg}).Run(ctx)
	require.NoError(t, err)
	assert.True(t, rep.Meta.Passed)
	assert.True(t, rep.Passed(), "mismatches: %v", rep.Mismatches())
	assert.False(t, rep.Accelerated.DispatchDisabled)
	assert.True(t, rep.Scalar.DispatchDisabled)
	assert.Equal(t, hwy.CapNone, rep.Scalar.Capability)
}

func TestSessionLocalWithoutMeta(t *testing.T) {
	skipUnlessBuilds(t)
	reg, err := NewRegistry(fixtureSamples{})
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.ModuleDir = moduleRoot(t)
	cfg.WorkDir = t.TempDir()

	// The in-process registry does not hold the bundled meta sample's owner.
	_, err = (&Session{Config: cfg, Local: reg}).Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownOwner)
}
