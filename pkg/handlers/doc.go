// Package handlers is a container for HTTP handlers. Note that this is not a
// container for lambda.Handler related elements such as the greeting
// functions. Instead, this is where the http.Handler instances are defined
// that expose those functions over HTTP.
package handlers
