package v1

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// proxyError matches the body API Gateway returns when an integration fails.
type proxyError struct {
	Message string `json:"message"`
}

const (
	proxyMessageInternal  = "Internal server error"
	proxyMessageMalformed = "Malformed Lambda proxy response"
)

// Proxy translates plain HTTP requests into API Gateway proxy events and
// renders the function's proxy response as the HTTP response. It stands in
// for the API Gateway Lambda proxy integration so that functions written
// against domain.InboundRequest can be called with any HTTP client.
//
// The request path given to the function is the remainder of the URL after
// the function name. Every call is assigned a new request id which is used as
// both requestContext.requestId and the Lambda request id.
type Proxy struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
}

func (h *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.FetchHandler(r.Context(), fnName)
	if errFn != nil {
		writeFetchError(w, errFn)
		return
	}
	body, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		writeProxyError(w, http.StatusBadRequest, errRead.Error())
		return
	}
	requestID := uuid.NewString()
	event := newInboundRequest(r, "/"+h.URLParamFn(r.Context(), "*"), body, requestID)
	payload, errMarshal := json.Marshal(event)
	if errMarshal != nil {
		writeProxyError(w, http.StatusInternalServerError, proxyMessageInternal)
		return
	}

	ctx := newInvocationContext(r.Context(), fnName, requestID)
	start := time.Now()
	rb, errInvoke := fn.Invoke(ctx, payload)
	inv := invocation{
		FunctionName: fnName,
		RequestID:    requestID,
		Elapsed:      time.Since(start),
		Err:          errInvoke,
	}
	if errInvoke != nil {
		inv.Status = http.StatusBadGateway
		recordInvocation(ctx, h.LogFn, h.StatFn, inv)
		writeProxyError(w, http.StatusBadGateway, proxyMessageInternal)
		return
	}
	response, errDecode := decodeOutboundResponse(rb)
	if errDecode != nil {
		inv.Status = http.StatusBadGateway
		inv.Err = errDecode
		recordInvocation(ctx, h.LogFn, h.StatFn, inv)
		writeProxyError(w, http.StatusBadGateway, proxyMessageMalformed)
		return
	}
	inv.Status = response.StatusCode
	recordInvocation(ctx, h.LogFn, h.StatFn, inv)

	writeResponseHeaders(w.Header(), response.OutboundResponse)
	w.WriteHeader(response.StatusCode)
	_, _ = w.Write(response.rawBody)
}

// writeResponseHeaders merges the single and multi value headers of a proxy
// response. A single value that already appears in the multi value list for
// the same key is not repeated.
func writeResponseHeaders(h http.Header, response domain.OutboundResponse) {
	for k, vs := range response.MultiValueHeaders {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	for k, v := range response.Headers {
		if containsValue(h.Values(k), v) {
			continue
		}
		h.Add(k, v)
	}
}

func containsValue(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

func writeProxyError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(proxyError{Message: message})
}

// newInboundRequest builds the proxy event for r. Bodies that are not valid
// UTF-8 are base64 encoded as API Gateway does for binary payloads.
func newInboundRequest(r *http.Request, path string, body []byte, requestID string) domain.InboundRequest {
	headers := make(map[string]string, len(r.Header))
	multiHeaders := make(map[string][]string, len(r.Header))
	for k, vs := range r.Header {
		if len(vs) == 0 {
			continue
		}
		headers[k] = vs[len(vs)-1]
		multiHeaders[k] = vs
	}
	if r.Host != "" {
		headers["Host"] = r.Host
		multiHeaders["Host"] = []string{r.Host}
	}
	query := make(map[string]string)
	multiQuery := make(map[string][]string)
	for k, vs := range r.URL.Query() {
		if len(vs) == 0 {
			continue
		}
		query[k] = vs[len(vs)-1]
		multiQuery[k] = vs
	}
	sourceIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		sourceIP = r.RemoteAddr
	}
	event := domain.InboundRequest{
		Resource:                        path,
		Path:                            path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               multiHeaders,
		QueryStringParameters:           query,
		MultiValueQueryStringParameters: multiQuery,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:        requestID,
			HTTPMethod:       r.Method,
			Path:             path,
			Protocol:         r.Proto,
			RequestTimeEpoch: time.Now().UnixMilli(),
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  sourceIP,
				UserAgent: r.UserAgent(),
			},
		},
	}
	if utf8.Valid(body) {
		event.Body = string(body)
	} else {
		event.Body = base64.StdEncoding.EncodeToString(body)
		event.IsBase64Encoded = true
	}
	return event
}

type decodedResponse struct {
	domain.OutboundResponse
	rawBody []byte
}

// decodeOutboundResponse interprets a function result as a proxy response.
// A result that is not a JSON object with a valid status code is malformed.
func decodeOutboundResponse(b []byte) (decodedResponse, error) {
	var response decodedResponse
	if err := json.Unmarshal(b, &response.OutboundResponse); err != nil {
		return response, err
	}
	if response.StatusCode < 100 || response.StatusCode > 599 {
		return response, fmt.Errorf("invalid statusCode %d in proxy response", response.StatusCode)
	}
	response.rawBody = []byte(response.Body)
	if response.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(response.Body)
		if err != nil {
			return response, err
		}
		response.rawBody = raw
	}
	return response, nil
}
