package render

import "errors"

// ErrRendererNotFound is returned by registry lookups for unknown names.
var ErrRendererNotFound = errors.New("render: renderer not found")
