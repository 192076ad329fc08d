package domain

import (
	"context"
)

// URLParamFn extracts a named URL parameter from a request context. HTTP
// handlers accept one of these so that they are not coupled to a specific mux.
type URLParamFn func(ctx context.Context, name string) string
