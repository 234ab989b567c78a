// Command samplecheck reports malformed verification sample owners.
//
// Usage:
//
//	go run ./cmd/samplecheck ./internal/samples
//	go vet -vettool=$(which samplecheck) ./...
package main

import (
	"github.com/ajroetker/go-lanes/internal/samplecheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(samplecheck.Analyzer) }
