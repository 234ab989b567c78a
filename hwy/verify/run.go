package verify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Session builds the images a Config describes and verifies them.
type Session struct {
	Config *Config
	// Local serves build A in-process. When nil, build A is built and run
	// as a process like build S.
	Local  *Registry
	Logger *slog.Logger
}

// Run builds the needed images, runs the Verifier and cleans up.
func (s *Session) Run(ctx context.Context) (*Report, error) {
	cfg := s.Config
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir := cfg.WorkDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "hwyverify-")
		if err != nil {
			return nil, err
		}
		dir = tmp
	}
	if !cfg.KeepImages {
		defer os.RemoveAll(dir)
	}
	opts := BuildOptions{
		Package: cfg.ImagePackage,
		Dir:     dir,
		Tags:    cfg.BuildTags,
		WorkDir: cfg.ModuleDir,
		Logger:  log,
	}

	var accelerated Image
	var scalarPath string
	if s.Local != nil {
		o := opts
		o.Name = "hwyimage-scalar"
		o.Tags = append(append([]string(nil), cfg.BuildTags...), ScalarTag)
		path, err := Build(ctx, o)
		if err != nil {
			return nil, err
		}
		scalarPath = path
		accelerated = NewLocalImage(s.Local)
	} else {
		pair, err := BuildPair(ctx, opts)
		if err != nil {
			return nil, err
		}
		scalarPath = pair.Scalar
		img, err := StartProcessImage(pair.Accelerated, log)
		if err != nil {
			return nil, err
		}
		accelerated = img
	}
	defer accelerated.Close()

	scalar, err := StartProcessImage(scalarPath, log)
	if err != nil {
		return nil, err
	}
	defer scalar.Close()

	if cfg.KeepImages {
		log.Info("keeping images", "dir", filepath.Clean(dir))
	}
	v := &Verifier{
		Accelerated: accelerated,
		Scalar:      scalar,
		Meta:        cfg.Meta(),
		Logger:      log,
	}
	rep, err := v.Run(ctx)
	if err != nil {
		return rep, fmt.Errorf("verification aborted: %w", err)
	}
	return rep, nil
}
