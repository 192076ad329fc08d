package greeter

import (
	"context"

	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/asecurityteam/greeter/pkg/handlerfetcher"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

const (
	// settingsPrefix namespaces every runtime setting, for example
	// GREETER_RUNTIME_HTTPSERVER_ADDRESS.
	settingsPrefix = "GREETER"
	// runtimeGroup is the settings group of the runhttp component. The
	// logger and stats settings live beneath it.
	runtimeGroup = "RUNTIME"
)

// NewStatic generates a runtime bound to the given handler mapping.
func NewStatic(ctx context.Context, s settings.Source, handlers map[string]domain.Handler) (*runhttp.Runtime, error) {
	fetcher := &handlerfetcher.Static{
		Handlers: handlers,
	}
	conf := &RouterConfig{
		HandlerFetcher: fetcher,
	}
	router := NewRouter(conf)
	rtC := runhttp.NewComponent().WithHandler(router)
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		rtC,
		rt,
	)
	return rt, err
}
