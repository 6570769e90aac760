package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/mailbatch/pkg/mailer"
)

var errRelay = errors.New("relay rejected message")

// fakeSender records every message and fails for recipients listed in failFor.
type fakeSender struct {
	mu       sync.Mutex
	sent     []*mailer.Email
	failFor  map[string]bool
	panicFor map[string]bool
	latency  time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	sawCanceled atomic.Bool
}

func newFakeSender(failFor ...string) *fakeSender {
	f := &fakeSender{failFor: map[string]bool{}, panicFor: map[string]bool{}}
	for _, to := range failFor {
		f.failFor[to] = true
	}
	return f
}

func (f *fakeSender) Send(ctx context.Context, email *mailer.Email) error {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	if ctx.Err() != nil {
		f.sawCanceled.Store(true)
	}
	if f.latency > 0 {
		time.Sleep(f.latency)
	}

	f.mu.Lock()
	f.sent = append(f.sent, email)
	f.mu.Unlock()

	to := email.To[0]
	if f.panicFor[to] {
		panic("connection state corrupted")
	}
	if f.failFor[to] {
		return errRelay
	}
	return nil
}

func (f *fakeSender) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeSender) emails() []*mailer.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*mailer.Email(nil), f.sent...)
}
