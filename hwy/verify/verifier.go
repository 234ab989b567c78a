package verify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// Verifier cross-checks an accelerated image against a scalar image.
type Verifier struct {
	// Accelerated is build A, with dispatch enabled.
	Accelerated Image
	// Scalar is build S, built with ScalarTag.
	Scalar Image
	// Meta is a bool sample reporting whether dispatch is disabled in the
	// image it runs in. It must return false in A and true in S.
	Meta SampleID
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Run verifies every sample the images expose.
//
// Mismatched results are recorded in the report and do not stop the run.
// A build mismatch, a failed meta check, differing sample sets or a sample
// that does not resolve is fatal: Run returns the report so far and an
// error naming the cause.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	log := v.Logger
	if log == nil {
		log = slog.Default()
	}
	start := time.Now()
	rep := &Report{Meta: MetaResult{ID: v.Meta}}

	var err error
	if rep.Accelerated, err = v.Accelerated.Info(ctx); err != nil {
		return rep, fmt.Errorf("verify: accelerated image info: %w", err)
	}
	if rep.Scalar, err = v.Scalar.Info(ctx); err != nil {
		return rep, fmt.Errorf("verify: scalar image info: %w", err)
	}
	log.Info("images loaded",
		"accelerated", rep.Accelerated.Capability,
		"scalar", rep.Scalar.Capability)
	if rep.Accelerated.DispatchDisabled {
		return rep, fmt.Errorf("%w: accelerated image was built with -tags %s", ErrBuildMismatch, ScalarTag)
	}
	if !rep.Scalar.DispatchDisabled {
		return rep, fmt.Errorf("%w: scalar image was built without -tags %s", ErrBuildMismatch, ScalarTag)
	}

	if err := v.metaCheck(ctx, rep); err != nil {
		return rep, err
	}

	ids, err := v.Accelerated.List(ctx)
	if err != nil {
		return rep, fmt.Errorf("verify: list accelerated samples: %w", err)
	}
	scalarIDs, err := v.Scalar.List(ctx)
	if err != nil {
		return rep, fmt.Errorf("verify: list scalar samples: %w", err)
	}
	onlyA, onlyS := lo.Difference(ids, scalarIDs)
	if len(onlyA) > 0 || len(onlyS) > 0 {
		return rep, fmt.Errorf("%w: only in accelerated %v, only in scalar %v", ErrSampleSetMismatch, onlyA, onlyS)
	}

	for _, id := range lo.Without(ids, v.Meta) {
		a, err := v.Accelerated.Invoke(ctx, id)
		if err != nil {
			return rep, fmt.Errorf("verify: accelerated %s: %w", id, err)
		}
		s, err := v.Scalar.Invoke(ctx, id)
		if err != nil {
			return rep, fmt.Errorf("verify: scalar %s: %w", id, err)
		}
		r := Result{ID: id, Accelerated: a, Scalar: s, Match: a.Equal(s)}
		rep.Results = append(rep.Results, r)
		if r.Match {
			log.Debug("sample agrees", "sample", id, "value", a)
		} else {
			log.Warn("sample mismatch", "sample", id, "accelerated", a, "scalar", s)
		}
	}
	rep.Elapsed = time.Since(start)
	log.Info("verification done", "samples", len(rep.Results), "mismatches", len(rep.Mismatches()), "elapsed", rep.Elapsed)
	return rep, nil
}

// metaCheck guards against comparing an image with itself: the meta sample
// must observe dispatch enabled in A and disabled in S.
func (v *Verifier) metaCheck(ctx context.Context, rep *Report) error {
	a, err := v.Accelerated.Invoke(ctx, v.Meta)
	if err != nil {
		return fmt.Errorf("verify: accelerated meta %s: %w", v.Meta, err)
	}
	s, err := v.Scalar.Invoke(ctx, v.Meta)
	if err != nil {
		return fmt.Errorf("verify: scalar meta %s: %w", v.Meta, err)
	}
	rep.Meta.Accelerated, rep.Meta.Scalar = a, s
	wantA, _ := ValueOf(false)
	wantS, _ := ValueOf(true)
	rep.Meta.Passed = a.Equal(wantA) && s.Equal(wantS)
	if !rep.Meta.Passed {
		return fmt.Errorf("%w: %s returned %v in the accelerated image and %v in the scalar image, want false and true",
			ErrMetaCheck, v.Meta, a, s)
	}
	return nil
}
