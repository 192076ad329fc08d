package main

// This binary serves the greeting templates. By default it runs the HTTP
// runtime; with -mode lambda it hands a single function to the native
// Lambda runtime instead.

import (
	"context"
	"flag"
	"fmt"
	"os"

	greeter "github.com/asecurityteam/greeter/pkg"
	"github.com/asecurityteam/greeter/pkg/domain"
	"github.com/asecurityteam/greeter/pkg/greetings"
	"github.com/asecurityteam/greeter/pkg/serializer"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	handlers := map[string]domain.Handler{
		// The keys of this map are the function names used in the Invoke
		// and Proxy URLs. For example:
		//
		//		curl --request POST localhost:8080/2015-03-31/functions/hello-json/invocations
		//		curl localhost:8080/proxy/hello-text
		"hello-json": lambda.NewHandler((&greetings.JSONMessage{
			Serializer: serializer.JSON{},
			LogFn:      runhttp.LoggerFromContext,
		}).Handle),
		"hello-text": lambda.NewHandler((&greetings.TextMessage{}).Handle),
	}

	fs := flag.NewFlagSet("greeter", flag.ContinueOnError)
	fs.Usage = func() {}
	mode := fs.String("mode", greeter.BuildMode, "runtime mode: http or lambda")
	target := fs.String("function", greeter.TargetFunction, "function to run in lambda mode")
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(greeter.HelpStatic())
		return
	}
	if err != nil {
		panic(err.Error())
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := greeter.StartMode(context.Background(), source, handlers, *mode, *target); err != nil {
		panic(err.Error())
	}
}
