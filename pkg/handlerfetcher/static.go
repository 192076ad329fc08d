package handlerfetcher

import (
	"context"

	"github.com/asecurityteam/greeter/pkg/domain"
)

// Static resolves function names against a map that is fixed at build time.
// Every function shares the process of the runtime and there is no way to add,
// remove, or replace one without a new build. The greeting templates are
// compiled into the binary, so this is the loading strategy the runtime uses.
type Static struct {
	// Handlers maps function names, as they appear in the Invoke and Proxy
	// URLs, to the functions that serve them.
	Handlers map[string]domain.Handler
}

// FetchHandler returns the Handler registered under name or a
// domain.NotFoundError when there is none.
func (f *Static) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	if h, ok := f.Handlers[name]; ok {
		return h, nil
	}
	return nil, domain.NotFoundError{ID: name}
}
