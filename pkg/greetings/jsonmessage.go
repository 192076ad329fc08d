package greetings

import (
	"context"
	"net/http"

	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/asecurityteam/greeter/pkg/serializer"
)

const jsonMessageText = "Hello World"

type serializationFailure struct {
	Reason    string `logevent:"reason"`
	RequestID string `logevent:"request_id"`
	Message   string `logevent:"message,default=response-serialization-failure"`
}

// JSONMessage responds to every request with a JSON document of the form
// {"message":"Hello World"}.
type JSONMessage struct {
	// Serializer encodes the response document. Defaults to serializer.JSON.
	Serializer domain.Serializer
	// LogFn is used to report serialization failures. Failures are not
	// logged when this is nil.
	LogFn domain.LogFn
}

// Handle ignores the request content and returns the serialized message.
// A serialization failure is converted to a 500 response with an empty
// body and is never returned as an error.
func (h *JSONMessage) Handle(ctx context.Context, request domain.InboundRequest) (domain.OutboundResponse, error) {
	s := h.Serializer
	if s == nil {
		s = serializer.JSON{}
	}
	b, err := s.Marshal(map[string]string{"message": jsonMessageText})
	if err != nil {
		if h.LogFn != nil {
			h.LogFn(ctx).Error(serializationFailure{
				Reason:    domain.SerializationError{Reason: err}.Error(),
				RequestID: request.RequestContext.RequestID,
			})
		}
		return domain.OutboundResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return domain.OutboundResponse{
		StatusCode: http.StatusOK,
		Body:       string(b),
	}, nil
}
