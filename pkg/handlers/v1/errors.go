package v1

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/asecurityteam/greeter/pkg/domain"
)

// lambdaError is the body Lambda returns for a failed invocation.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

// errResponseStackTrace is always empty; stack traces are not captured.
var errResponseStackTrace = []string{}

// responseFromError names the error by its type, dereferencing pointers.
func responseFromError(err error) lambdaError {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return lambdaError{
		Message:    err.Error(),
		Type:       errTypeName,
		StackTrace: errResponseStackTrace,
	}
}

// statusFromError reports payload decoding failures as 400 and any other
// function error as 500.
func statusFromError(err error) int {
	switch err.(type) {
	case nil:
		return http.StatusOK
	case *json.InvalidUTF8Error: // nolint
		return http.StatusBadRequest
	case *json.InvalidUnmarshalError:
		return http.StatusBadRequest
	case *json.UnmarshalFieldError: // nolint
		return http.StatusBadRequest
	case *json.UnmarshalTypeError:
		return http.StatusBadRequest
	case *json.SyntaxError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeFetchError renders a failed function lookup. Unknown functions are
// reported as 404 and any other failure as 500.
func writeFetchError(w http.ResponseWriter, err error) {
	switch err.(type) {
	case domain.NotFoundError, *domain.NotFoundError:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = json.NewEncoder(w).Encode(responseFromError(err))
}
