// Package http implements the REST transport of the finance tracker.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing and access logging are handled in this package before
// requests are delegated to the service layer. Every error answer is a JSON
// body of the form {"message": "..."}.
package http
