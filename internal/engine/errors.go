package engine

import "errors"

var (
	// ErrExportFailed indicates a layer export failed under the abort policy.
	ErrExportFailed = errors.New("export failed")

	// ErrInvalidRequest indicates a malformed run request.
	ErrInvalidRequest = errors.New("invalid request")
)
