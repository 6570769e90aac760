// Package health provides liveness and readiness HTTP handlers.
//
// [LivenessHandler] always reports OK. [ReadinessHandler] runs a set of named
// [Checks] concurrently under a shared timeout and reports 503 when any fails.
// For mailbatch the readiness check dials the SMTP relay:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"smtp": smtpSender.Healthcheck(),
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client asks
// for JSON with ?format=json or an Accept: application/json header:
//
//	{"status":"unhealthy","checks":{"smtp":{"status":"unhealthy","error":"..."}}}
//
// A check that panics or overruns the timeout is reported unhealthy; overruns
// wrap [ErrCheckTimeout].
package health
