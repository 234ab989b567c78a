// Command hwyverify checks that the accelerated and scalar bodies of every
// hwy operation agree on this machine.
//
// It builds the image package with -tags noasm, runs the verification
// sample set in this process (build A) and in the scalar image (build S),
// and reports every sample whose results differ.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/verify"
	"github.com/ajroetker/go-lanes/internal/samples"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hwyverify",
		Short: "Cross-check accelerated and scalar hwy builds",
		Long: `hwyverify builds the hwy sample image with dispatch forced off
(-tags noasm) and compares every sample against the accelerated build
running on this machine's selected instruction set.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-log", false, "Log as JSON")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := hwy.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "hwyverify v%s (%s) %s/%s dispatch=%s\n",
				version, commit, info.GOOS, info.GOARCH, info.Capability)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print the dispatch state of this process",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(hwy.Info()); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the verification samples",
		RunE:  runList,
	}
	listCmd.Flags().String("owner", "", "Only list samples of this owner (suffix match)")
	rootCmd.AddCommand(listCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Build the scalar image and verify every sample",
		RunE:  runVerify,
	}
	runCmd.Flags().String("config", "hwyverify.yaml", "Config file (missing file means defaults)")
	runCmd.Flags().String("package", "", "Image main package")
	runCmd.Flags().String("module-dir", "", "Directory go build runs in")
	runCmd.Flags().String("work-dir", "", "Directory for image binaries (default: temporary)")
	runCmd.Flags().String("meta", "", "Meta sample as <owner>.<name>")
	runCmd.Flags().String("format", "", "Report format: text or yaml")
	runCmd.Flags().Bool("keep-images", false, "Keep image binaries after the run")
	runCmd.Flags().Bool("isolate", false, "Run the accelerated build as a separate process too")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	var w io.Writer = cmd.ErrOrStderr()
	if jsonLog {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := samples.NewRegistry()
	if err != nil {
		return err
	}
	filter, _ := cmd.Flags().GetString("owner")
	ids := lo.Filter(reg.List(), func(id verify.SampleID, _ int) bool {
		return strings.HasSuffix(id.Owner, filter)
	})
	for owner, group := range groupByOwner(ids) {
		fmt.Fprintln(cmd.OutOrStdout(), owner)
		for _, id := range group {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", id.Name)
		}
	}
	return nil
}

// groupByOwner yields owners in sorted order with their samples.
func groupByOwner(ids []verify.SampleID) func(yield func(string, []verify.SampleID) bool) {
	groups := lo.GroupBy(ids, func(id verify.SampleID) string { return id.Owner })
	owners := lo.Keys(groups)
	slices.Sort(owners)
	return func(yield func(string, []verify.SampleID) bool) {
		for _, o := range owners {
			if !yield(o, groups[o]) {
				return
			}
		}
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	path, _ := cmd.Flags().GetString("config")
	cfg, err := verify.LoadConfig(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	session := &verify.Session{Config: cfg, Logger: logger}
	if isolate, _ := cmd.Flags().GetBool("isolate"); !isolate {
		reg, err := samples.NewRegistry()
		if err != nil {
			return err
		}
		session.Local = reg
	}

	rep, runErr := session.Run(cmd.Context())
	if rep != nil {
		if err := writeReport(cmd.OutOrStdout(), rep, cfg.Format); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if !rep.Passed() {
		return fmt.Errorf("%s", rep.Summary())
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *verify.Config) {
	f := cmd.Flags()
	if f.Changed("package") {
		cfg.ImagePackage, _ = f.GetString("package")
	}
	if f.Changed("module-dir") {
		cfg.ModuleDir, _ = f.GetString("module-dir")
	}
	if f.Changed("work-dir") {
		cfg.WorkDir, _ = f.GetString("work-dir")
	}
	if f.Changed("meta") {
		cfg.MetaSample, _ = f.GetString("meta")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("keep-images") {
		cfg.KeepImages, _ = f.GetBool("keep-images")
	}
}

func writeReport(w io.Writer, rep *verify.Report, format string) error {
	if format == verify.FormatYAML {
		return rep.WriteYAML(w)
	}
	return rep.WriteText(w)
}
