package greeter

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/asecurityteam/greeter/pkg/handlerfetcher"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
)

const (
	// BuildModeHTTP runs an HTTP server that exposes every registered
	// function through the Invoke and Proxy APIs.
	BuildModeHTTP = "http"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires the TargetFunction value to be set.
	BuildModeLambda = "lambda"
)

var (
	// BuildMode determines the behavior of the Start method. It may be set
	// at build time with `-ldflags "-X github.com/asecurityteam/greeter/pkg.BuildMode=<value>"`
	// or assigned in code before calling Start. StartMode accepts the value
	// as a parameter instead.
	BuildMode = BuildModeHTTP
	// TargetFunction selects the single function served when running in
	// the native lambda mode. It can be set in all the same ways as BuildMode.
	TargetFunction = ""
	// LambdaStartFn hands a function to the native lambda runtime and
	// does not return under normal operation.
	LambdaStartFn = lambda.StartHandler
)

// Start runs the given functions according to BuildMode and TargetFunction.
func Start(ctx context.Context, s settings.Source, handlers map[string]domain.Handler) error {
	return StartMode(ctx, s, handlers, BuildMode, TargetFunction)
}

// StartMode works just like Start but allows for explicit passing of the build
// mode and target function.
func StartMode(ctx context.Context, s settings.Source, handlers map[string]domain.Handler, mode string, target string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, handlers)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s, handlers, target)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, handlers map[string]domain.Handler) error {
	rt, err := NewStatic(ctx, s, handlers)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs the function registered as target in the native lambda
// runtime. Each invocation receives a logger and stat client in its context
// just as it would when served over HTTP. Both are built from the same
// GREETER_RUNTIME_LOGGER_* and GREETER_RUNTIME_STATS_* settings that
// configure the HTTP runtime.
func StartLambda(ctx context.Context, s settings.Source, handlers map[string]domain.Handler, target string) error {
	logger, stat, err := newTelemetry(ctx, s)
	if err != nil {
		return err
	}
	h, err := newLambdaFetcher(logger, stat, handlers).FetchHandler(ctx, target)
	if err != nil {
		return err
	}
	LambdaStartFn(h)
	return nil
}

func newTelemetry(ctx context.Context, s settings.Source) (domain.Logger, domain.Stat, error) {
	rtC := runhttp.NewComponent()
	source := &settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix, runtimeGroup}}
	var logger domain.Logger
	if err := settings.NewComponent(ctx, source, rtC.Logger, &logger); err != nil {
		return nil, nil, err
	}
	var stat domain.Stat
	if err := settings.NewComponent(ctx, source, rtC.Stats, &stat); err != nil {
		return nil, nil, err
	}
	return logger, stat, nil
}

func newLambdaFetcher(logger domain.Logger, stat domain.Stat, handlers map[string]domain.Handler) domain.HandlerFetcher {
	var fetcher domain.HandlerFetcher = &handlerfetcher.Static{Handlers: handlers}
	fetcher = &handlerfetcher.Logging{Logger: logger, Fetcher: fetcher}
	return &handlerfetcher.Stat{Stat: stat, Fetcher: fetcher}
}
