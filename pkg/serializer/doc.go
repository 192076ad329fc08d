// Package serializer contains implementations of the domain.Serializer
// interface. Functions that produce structured response bodies are given one
// of these explicitly rather than reaching for a global encoder.
package serializer
