package verify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ScalarTag is the build tag that forces every operation onto its scalar
// body. It is the only difference between the two images of a pair.
const ScalarTag = "noasm"

// DefaultImagePackage is the image binary shipped with this module.
const DefaultImagePackage = "github.com/ajroetker/go-lanes/cmd/hwyimage"

// BuildOptions describe one image build.
type BuildOptions struct {
	// Package is the import path or directory of the image main package.
	Package string
	// Dir is the output directory.
	Dir string
	// Name is the output file name, without the platform executable suffix.
	Name string
	// Tags are passed to go build -tags.
	Tags []string
	// GoCmd is the go command to run. Defaults to "go".
	GoCmd string
	// WorkDir is the directory go build runs in, normally the module root.
	WorkDir string
	Logger  *slog.Logger
}

// Build compiles one image and returns the path of the binary.
func Build(ctx context.Context, opts BuildOptions) (string, error) {
	if opts.Package == "" {
		opts.Package = DefaultImagePackage
	}
	if opts.GoCmd == "" {
		opts.GoCmd = "go"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("verify: build %s: %w", opts.Name, err)
	}
	out := filepath.Join(opts.Dir, opts.Name)
	if runtime.GOOS == "windows" {
		out += ".exe"
	}

	args := []string{"build"}
	if len(opts.Tags) > 0 {
		args = append(args, "-tags", strings.Join(opts.Tags, ","))
	}
	args = append(args, "-o", out, opts.Package)

	cmd := exec.CommandContext(ctx, opts.GoCmd, args...)
	cmd.Dir = opts.WorkDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	opts.Logger.Info("building image", "name", opts.Name, "package", opts.Package, "tags", opts.Tags)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("verify: go %s: %w\n%s", strings.Join(args, " "), err, stderr.Bytes())
	}
	return out, nil
}

// Pair is the binaries of an accelerated and a scalar image.
type Pair struct {
	Accelerated string
	Scalar      string
}

// BuildPair builds the accelerated and scalar images of pkg into dir
// concurrently. The scalar image differs only by ScalarTag.
func BuildPair(ctx context.Context, opts BuildOptions) (Pair, error) {
	var pair Pair
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o := opts
		o.Name = "hwyimage-accelerated"
		path, err := Build(ctx, o)
		pair.Accelerated = path
		return err
	})
	g.Go(func() error {
		o := opts
		o.Name = "hwyimage-scalar"
		o.Tags = append(append([]string(nil), opts.Tags...), ScalarTag)
		path, err := Build(ctx, o)
		pair.Scalar = path
		return err
	})
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}
	return pair, nil
}
