package verify

import "errors"

// Resolution errors. Invoke wraps these with the offending identifier.
var (
	ErrUnknownOwner      = errors.New("unknown sample owner")
	ErrUnknownSample     = errors.New("unknown sample")
	ErrNotSample         = errors.New("method is not a sample")
	ErrUnsupportedResult = errors.New("unsupported sample result type")
	ErrBadRequest        = errors.New("bad request")
	ErrSamplePanicked    = errors.New("sample panicked")
)

// Run errors. Each is fatal to a verification run.
var (
	ErrBuildMismatch     = errors.New("image builds are not an accelerated/scalar pair")
	ErrMetaCheck         = errors.New("meta sample did not distinguish the builds")
	ErrSampleSetMismatch = errors.New("images expose different sample sets")
	ErrImageClosed       = errors.New("image is closed")
)

// wireCodes maps errors to the codes used on the wire.
var wireCodes = []struct {
	code string
	err  error
}{
	{"unknown_owner", ErrUnknownOwner},
	{"unknown_sample", ErrUnknownSample},
	{"not_a_sample", ErrNotSample},
	{"unsupported_result", ErrUnsupportedResult},
	{"bad_request", ErrBadRequest},
	{"sample_panicked", ErrSamplePanicked},
}

func codeOf(err error) string {
	for _, c := range wireCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}

func errorOf(code string) error {
	for _, c := range wireCodes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}
