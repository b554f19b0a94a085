package pdf

import "errors"

// Domain errors returned by the pipeline. Handlers map these onto HTTP
// status codes.
var (
	// ErrInvalidDocument indicates an input could not be parsed as a PDF.
	// The whole request is aborted; there is no partial merge output.
	ErrInvalidDocument = errors.New("input is not a parseable PDF")

	// ErrCompressionFailed indicates the external compressor was attempted
	// and did not produce usable output. Once the external tool has been
	// chosen and invoked there is no silent fallback.
	ErrCompressionFailed = errors.New("external compression failed")
)
