package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
	requestIDHeader               = "X-Amzn-Requestid"
)

// bgContext keeps the values of the request context for Event invocations
// while taking cancellation and deadlines from context.Background, so that
// the function is not canceled when ServeHTTP returns.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// newInvocationContext attaches the Lambda request metadata that a function
// would receive from the native runtime.
func newInvocationContext(ctx context.Context, fnName string, requestID string) context.Context {
	return lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       requestID,
		InvokedFunctionArn: fnName,
	})
}

// Invoke emulates the AWS Lambda Invoke API
// (https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html) for the
// registered functions. LogType and Qualifier are ignored and the executed
// version is always reported as "latest".
type Invoke struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.FetchHandler(r.Context(), fnName)
	if errFn != nil {
		writeFetchError(w, errFn)
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse
	}
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(responseFromError(errRead))
		return
	}
	requestID := uuid.NewString()
	ctx := newInvocationContext(r.Context(), fnName, requestID)
	w.Header().Set(invocationVersionHeader, "latest")
	w.Header().Set(requestIDHeader, requestID)
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() { _, _ = h.invoke(ctx, fn, fnName, requestID, b) }()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		rb, errInvoke := h.invoke(ctx, fn, fnName, requestID, b)
		statusCode := statusFromError(errInvoke)
		if statusCode > 299 {
			w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
		}
		if statusCode > 499 {
			w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
		}
		w.WriteHeader(statusCode)
		if errInvoke != nil {
			rb, _ = json.Marshal(responseFromError(errInvoke))
		}
		if len(rb) > 0 {
			_, _ = w.Write(rb)
		}
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
	}
}

func (h *Invoke) invoke(ctx context.Context, fn domain.Handler, fnName string, requestID string, b []byte) ([]byte, error) {
	start := time.Now()
	rb, err := fn.Invoke(ctx, b)
	recordInvocation(ctx, h.LogFn, h.StatFn, invocation{
		FunctionName: fnName,
		RequestID:    requestID,
		Status:       statusFromError(err),
		Elapsed:      time.Since(start),
		Err:          err,
	})
	return rb, err
}
