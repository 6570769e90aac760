// Package middlewares provides HTTP middleware for mailbatch applications.
//
// # Request ID
//
// RequestID assigns an ID to each request. An upstream X-Request-ID or
// X-Correlation-ID header is reused; otherwise a UUIDv4 is generated.
// Pair it with RequestIDExtractor so every log line written with the request
// context carries request_id, including the dispatcher's per-item logs:
//
//	app := mailbatch.New(
//	    mailbatch.WithLogger("mailbatch", slog.LevelInfo, middlewares.RequestIDExtractor()),
//	    mailbatch.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns a handler panic into a *PanicError. The app's error handler
// renders it as a 500 JSON body.
//
// # CORS
//
// CORS answers preflight requests with 204 and decorates responses. The
// defaults are fully permissive: any origin is echoed back with
// credentials allowed, methods POST, GET, PATCH and OPTIONS, any header.
//
//	middlewares.CORS(middlewares.WithAllowOrigins("https://app.example.com"))
//
// # Token
//
// Token gates a route on a shared secret carried in the "token" query
// parameter. It is attached per route so health probes stay public:
//
//	r.POST("/send_email", h.send, middlewares.Token(secret))
//
// Missing and wrong tokens both produce {"status":401,"message":"Unauthorized"}.
package middlewares
