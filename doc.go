// Package mailbatch is an HTTP service that accepts a batch of email-send
// requests and relays each one through an SMTP relay (or the Resend API),
// reporting which sends failed.
//
// A single authenticated operation is exposed:
//
//	POST /send_email?token=<secret>
//	[
//	  {"to_email": "a@x.com", "cc_emails": ["c@x.com"], "subject": "s1", "body": "<p>b1</p>"},
//	  {"to_email": "b@x.com", "subject": "s2", "body": "b2"}
//	]
//
// It responds with {"status":200,"message":"Successfully sent emails!"} when every
// item was accepted by the transport, or {"status":500,"message":"Had N errors",
// "data":[...]} echoing the failed items. A missing or wrong token yields 401 and
// nothing is sent.
//
// This package is the application shell: it re-exports the HTTP core (App,
// Router, Context, errors, run options) from internal. The dispatch engine lives
// in pkg/dispatch, transports in pkg/mailer, and the process entry point in
// cmd/mailbatch.
package mailbatch
