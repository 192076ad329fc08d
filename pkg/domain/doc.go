// Package domain holds the types and interfaces shared by the greeter
// packages: the proxy request and response shapes, the Serializer capability,
// the HandlerFetcher contract, and the logging and metrics aliases.
//
// This package is also the container for all domain errors. Each error here
// represents a condition that needs to be communicated across interface
// boundaries.
//
// Apart from the Error methods of those errors, this package contains no
// executable code. Error types carry tests of their own.
package domain
