// Package http implements the HTTP transport of the products API.
//
// It wires the chi router, decodes path parameters, hands each request to
// the product service and turns the returned service.Outcome into a status
// code and JSON body. Tracing, access logging, CORS and Prometheus metrics are
// applied as middleware around every route.
package http
