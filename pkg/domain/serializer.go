package domain

// Serializer converts a response payload into its wire form. Functions that
// emit structured bodies accept one of these rather than encoding directly.
type Serializer interface {
	Marshal(v interface{}) ([]byte, error)
}
