// Package v1 contains the http.Handlers of the version 1.X.X greeter HTTP API:
// an emulation of the AWS Lambda Invoke API and an emulation of the API
// Gateway proxy integration. The version tracks this project's public HTTP
// API and is unrelated to the versions of the AWS APIs being emulated.
package v1
