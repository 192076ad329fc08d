// Package greetings contains the template functions served by the runtime.
// Each type exposes a Handle method with the signature expected by
// lambda.NewHandler so that it can be registered directly with a
// HandlerFetcher or started as a native lambda.
package greetings
