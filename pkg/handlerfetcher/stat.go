package handlerfetcher

import (
	"context"

	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/rs/xstats"
)

type statHandler struct {
	domain.Handler
	Stat domain.Stat
}

func (h *statHandler) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, h.Stat)
	return h.Handler.Invoke(ctx, b)
}

// Stat wraps each fetched Handler in a decorator that injects a stat client.
type Stat struct {
	Stat    domain.Stat
	Fetcher domain.HandlerFetcher
}

// FetchHandler calls the underlying HandlerFetcher and adds stat client injection.
func (f *Stat) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, err := f.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statHandler{Stat: f.Stat, Handler: h}, nil
}
