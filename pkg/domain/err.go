package domain

import "fmt"

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// SerializationError is emitted when a response payload cannot be
// encoded by a Serializer.
type SerializationError struct {
	// Reason is the error returned by the Serializer.
	Reason error
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize response: %v", e.Reason)
}

// Unwrap exposes the underlying Serializer error.
func (e SerializationError) Unwrap() error {
	return e.Reason
}
