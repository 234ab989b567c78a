package verify

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-lanes/hwy"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of one sample.
type Result struct {
	ID          SampleID `yaml:"id"`
	Accelerated Value    `yaml:"accelerated"`
	Scalar      Value    `yaml:"scalar"`
	Match       bool     `yaml:"match"`
}

// MetaResult is the outcome of the meta check.
type MetaResult struct {
	ID          SampleID `yaml:"id"`
	Accelerated Value    `yaml:"accelerated"`
	Scalar      Value    `yaml:"scalar"`
	Passed      bool     `yaml:"passed"`
}

// Report is the outcome of a verification run.
type Report struct {
	Accelerated hwy.RuntimeInfo `yaml:"accelerated"`
	Scalar      hwy.RuntimeInfo `yaml:"scalar"`
	Meta        MetaResult      `yaml:"meta"`
	Results     []Result        `yaml:"results"`
	Elapsed     time.Duration   `yaml:"elapsed"`
}

// Mismatches returns the results whose values differ.
func (r *Report) Mismatches() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Match {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether the meta check passed, at least one sample ran
// and every sample matched.
func (r *Report) Passed() bool {
	return r.Meta.Passed && len(r.Results) > 0 && len(r.Mismatches()) == 0
}

// WriteText writes a human-readable summary to w.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "accelerated:\t%s\t%s/%s\t%s\n", r.Accelerated.Capability, r.Accelerated.GOOS, r.Accelerated.GOARCH, r.Accelerated.CPUBrand)
	fmt.Fprintf(tw, "scalar:\t%s\tdispatch disabled=%t\n", r.Scalar.Capability, r.Scalar.DispatchDisabled)
	fmt.Fprintf(tw, "meta %s:\t%v / %v\t%s\n", r.Meta.ID, r.Meta.Accelerated, r.Meta.Scalar, passFail(r.Meta.Passed))
	fmt.Fprintln(tw)
	for _, res := range r.Results {
		if res.Match {
			fmt.Fprintf(tw, "ok\t%s\t%v\n", res.ID, res.Accelerated)
			continue
		}
		fmt.Fprintf(tw, "FAIL\t%s\taccelerated %v\tscalar %v\n", res.ID, res.Accelerated, res.Scalar)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "%d samples, %d mismatches, %s\t%s\n", len(r.Results), len(r.Mismatches()), r.Elapsed.Round(time.Millisecond), passFail(r.Passed()))
	return tw.Flush()
}

// WriteYAML writes the full report as YAML to w.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// Summary returns a one-line summary.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s: %d samples, %d mismatches", r.Accelerated.Capability, r.Scalar.Capability, len(r.Results), len(r.Mismatches()))
	if !r.Meta.Passed {
		b.WriteString(", meta check failed")
	}
	return b.String()
}
