package internal

// Handler declares routes on a router.
//
// Example:
//
//	type Email struct {
//	    dispatcher *dispatch.Dispatcher
//	}
//
//	func (h *Email) Routes(r mailbatch.Router) {
//	    r.POST("/send_email", h.send, middlewares.Token(secret))
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit by returning an error,
// or wrap the response.
//
// Example:
//
//	func RequireJSON(next mailbatch.HandlerFunc) mailbatch.HandlerFunc {
//	    return func(c mailbatch.Context) error {
//	        if !strings.HasPrefix(c.Header("Content-Type"), "application/json") {
//	            return mailbatch.ErrUnsupportedMediaType("expected application/json")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
