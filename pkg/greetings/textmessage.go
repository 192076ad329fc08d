package greetings

import (
	"context"
	"net/http"

	"github.com/asecurityteam/greeter/pkg/domain"
)

const textMessagePrefix = "Hello, World! Received a request with id "

// TextMessage responds with a plain text greeting that echoes the
// platform assigned request identifier.
type TextMessage struct{}

// Handle appends the request id to the greeting as-is. An empty or
// missing id produces the bare prefix.
func (h *TextMessage) Handle(ctx context.Context, request domain.InboundRequest) (domain.OutboundResponse, error) {
	return domain.OutboundResponse{
		StatusCode: http.StatusOK,
		Body:       textMessagePrefix + request.RequestContext.RequestID,
	}, nil
}
