// Package handlers exposes the mailbatch HTTP endpoints.
//
// Email serves POST /send_email. The route is gated by middlewares.Token, so an
// unauthenticated request never reaches the body decoder or the dispatcher:
//
//	app := mailbatch.New(
//	    mailbatch.WithHandlers(handlers.NewEmail(dispatcher, secret)),
//	)
package handlers
