package v1

import (
	"context"
	"strconv"
	"time"

	"github.com/asecurityteam/greeter/pkg/domain"
)

const (
	statInvokeCount    = "invoke.count"
	statInvokeDuration = "invoke.duration"
)

type invokeSuccess struct {
	FunctionName string `logevent:"function_name"`
	RequestID    string `logevent:"request_id"`
	Status       int    `logevent:"status"`
	Message      string `logevent:"message,default=invoke-success"`
}

type invokeFailure struct {
	FunctionName string `logevent:"function_name"`
	RequestID    string `logevent:"request_id"`
	Status       int    `logevent:"status"`
	Reason       string `logevent:"reason"`
	Message      string `logevent:"message,default=invoke-failure"`
}

// invocation describes one completed call of a function.
type invocation struct {
	FunctionName string
	RequestID    string
	Status       int
	Elapsed      time.Duration
	Err          error
}

func recordInvocation(ctx context.Context, logFn domain.LogFn, statFn domain.StatFn, inv invocation) {
	tags := []string{"function:" + inv.FunctionName, "status:" + strconv.Itoa(inv.Status)}
	stat := statFn(ctx)
	stat.Count(statInvokeCount, 1, tags...)
	stat.Timing(statInvokeDuration, inv.Elapsed, tags...)
	if inv.Err != nil {
		logFn(ctx).Error(invokeFailure{
			FunctionName: inv.FunctionName,
			RequestID:    inv.RequestID,
			Status:       inv.Status,
			Reason:       inv.Err.Error(),
		})
		return
	}
	logFn(ctx).Info(invokeSuccess{
		FunctionName: inv.FunctionName,
		RequestID:    inv.RequestID,
		Status:       inv.Status,
	})
}
