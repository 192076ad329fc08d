package serializer

import (
	"encoding/json"
)

// JSON encodes values as compact JSON using the same encoder that the
// Lambda SDK applies to function payloads.
type JSON struct{}

// Marshal returns the compact JSON encoding of v.
func (JSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
