// Package internal implements the HTTP application core: App, Router, Context,
// error rendering and the server runtime. Its public surface is re-exported by
// the root mailbatch package through type aliases; handlers and middleware
// depend on those aliases rather than on chi directly.
//
// # Request flow
//
// Global middleware (WithMiddleware) runs for every request, including 404/405
// responses. Route middleware passed to Router methods runs next, first listed
// first. A handler or middleware that returns an error hands it to the app's
// ErrorHandler; DefaultErrorHandler renders
//
//	{"status": 401, "message": "Unauthorized"}
//
// using the *HTTPError code and message, and hides the cause of anything else
// behind a generic 500.
//
// # Runtime
//
// App.Run listens, serves, and on SIGINT/SIGTERM (or cancellation of the
// WithContext base context) shuts down gracefully: in-flight requests finish,
// then shutdown hooks run within ShutdownTimeout. The server has no write
// timeout unless WriteTimeout is given, since a sequential batch holds its
// request open for as long as dispatch takes.
package internal
