// Package dispatch walks a batch of send requests through a shared mailer.Sender
// and reports which items were delivered to the transport and which were not.
//
// A Dispatcher never aborts a batch: every item is attempted exactly once and ends
// up either in Outcome.Sent or in Outcome.Failed. How the batch is walked is decided
// by a Policy:
//
//   - Sequential processes items in input order and waits a fixed pacing delay after
//     every attempt. The failed list keeps input order.
//   - Parallel runs a bounded pool of workers with no pacing. The failed list is in
//     completion order.
//
// Basic usage:
//
//	policy, err := dispatch.NewPolicy(cfg)
//	if err != nil {
//		return err
//	}
//	d, err := dispatch.New(sender, "team@example.com", policy,
//		dispatch.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	result := dispatch.Aggregate(d.Dispatch(ctx, batch))
//
// Dispatch detaches from the caller's cancellation: once a batch has started, all
// items are attempted. Per-send timeouts are enforced by the transport.
package dispatch
