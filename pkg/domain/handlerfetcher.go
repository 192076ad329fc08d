package domain

import (
	"context"
)

// HandlerFetcher resolves a function name, as given in an Invoke or Proxy
// URL, to the Handler that serves it.
type HandlerFetcher interface {
	// FetchHandler returns the Handler registered under name. Implementations
	// must emit a NotFoundError when there is no such Handler.
	FetchHandler(ctx context.Context, name string) (Handler, error)
}
