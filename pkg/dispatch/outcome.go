package dispatch

import "sync"

// Outcome partitions a batch into the items handed off to the transport and the
// items that could not be. Every input item appears in exactly one of the lists.
type Outcome struct {
	Sent   []Request
	Failed []Request
}

// Total returns the number of items accounted for.
func (o Outcome) Total() int {
	return len(o.Sent) + len(o.Failed)
}

// collector accumulates per-item results. Safe for concurrent use.
type collector struct {
	mu     sync.Mutex
	sent   []Request
	failed []Request
}

func newCollector(size int) *collector {
	return &collector{sent: make([]Request, 0, size)}
}

func (c *collector) record(req Request, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.failed = append(c.failed, req)
		return
	}
	c.sent = append(c.sent, req)
}

func (c *collector) outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Outcome{Sent: c.sent, Failed: c.failed}
}
