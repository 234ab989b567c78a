package verify

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ajroetker/go-lanes/hwy"
)

// The image boundary is line-delimited JSON: one Request per line on the
// image's stdin, one Response per line on its stdout, strictly in order.

// Request ops.
const (
	OpInfo   = "info"
	OpList   = "list"
	OpInvoke = "invoke"
)

// Request is one call across the image boundary.
type Request struct {
	Op    string `json:"op"`
	Owner string `json:"owner,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Response answers one Request. Exactly one of the payload fields or Error
// is set.
type Response struct {
	Info    *hwy.RuntimeInfo `json:"info,omitempty"`
	Samples []SampleID       `json:"samples,omitempty"`
	Value   *Value           `json:"value,omitempty"`
	Error   *WireError       `json:"error,omitempty"`
}

// WireError is an error that crossed the image boundary.
type WireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *WireError) Error() string { return e.Message }

// Unwrap maps the wire code back to its sentinel, so errors.Is works on
// both sides of the boundary.
func (e *WireError) Unwrap() error { return errorOf(e.Code) }

func wireError(err error) *WireError {
	return &WireError{Code: codeOf(err), Message: err.Error()}
}

// Handle answers a single request against reg.
func Handle(reg *Registry, req Request) Response {
	switch req.Op {
	case OpInfo:
		info := hwy.Info()
		return Response{Info: &info}
	case OpList:
		return Response{Samples: reg.List()}
	case OpInvoke:
		v, err := reg.Invoke(SampleID{Owner: req.Owner, Name: req.Name})
		if err != nil {
			return Response{Error: wireError(err)}
		}
		return Response{Value: &v}
	default:
		return Response{Error: wireError(fmt.Errorf("%w: op %q", ErrBadRequest, req.Op))}
	}
}

// Serve answers requests from r on w until r is exhausted or ctx is done.
// Malformed lines get a bad_request response; the loop keeps going.
func Serve(ctx context.Context, reg *Registry, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		var resp Response
		if err := json.Unmarshal(line, &req); err != nil {
			resp = Response{Error: wireError(fmt.Errorf("%w: %v", ErrBadRequest, err))}
		} else {
			resp = Handle(reg, req)
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("verify: write response: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("verify: write response: %w", err)
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("verify: read request: %w", err)
	}
	return nil
}
