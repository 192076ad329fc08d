// Package handlerfetcher contains implementations of the domain.HandlerFetcher
// interface that are responsible for managing the loading of functions. Static
// represents the only loading strategy. Logging and Stat decorate another
// HandlerFetcher so that every invocation of a fetched function carries a
// logger or stat client in its context.
package handlerfetcher
