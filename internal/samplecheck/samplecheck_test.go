package samplecheck_test

import (
	"testing"

	"github.com/ajroetker/go-lanes/internal/samplecheck"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), samplecheck.Analyzer, "owners")
}
