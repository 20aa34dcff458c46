package render

import "errors"

// Failure classes surfaced to callers. Malformed size values and gradient
// inputs are not errors: they degrade to zero or to gradient defaults and
// never propagate.
var (
	// ErrEnvironment: rasterization was requested without a usable graphics
	// surface. Fatal for the session; there is nothing to retry.
	ErrEnvironment = errors.New("render: graphics surface unavailable")

	// ErrIconLoad: fetching or decoding an icon source failed. The caller
	// may retry by reissuing AddImage; the stored overlay is untouched.
	ErrIconLoad = errors.New("render: icon load failed")

	// ErrRender: the vector markup could not be decoded during
	// rasterization. Markup generation is deterministic, so this is
	// unexpected, but it is surfaced rather than swallowed.
	ErrRender = errors.New("render: raster decode failed")
)
