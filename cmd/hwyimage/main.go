// Command hwyimage is one loadable image of the hwy library and the
// verification sample set. It answers line-delimited JSON requests on
// stdin (see package verify) until stdin closes.
//
// hwyverify builds it twice, once as is and once with -tags noasm, and
// drives both copies.
//
// Usage:
//
//	echo '{"op":"invoke","owner":"github.com/ajroetker/go-lanes/internal/samples.ReductionSamples","name":"Dot"}' | hwyimage
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/verify"
	"github.com/ajroetker/go-lanes/internal/samples"
)

func main() {
	// stdout carries the protocol; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	reg, err := samples.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hwyimage: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := hwy.Info()
	logger.Info("image ready", "capability", info.Capability, "dispatch_disabled", info.DispatchDisabled, "samples", len(reg.List()))
	if err := verify.Serve(ctx, reg, os.Stdin, os.Stdout); err != nil {
		logger.Error("serve failed", "error", err)
		os.Exit(1)
	}
}
