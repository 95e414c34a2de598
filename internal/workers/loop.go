// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Loop is a single-goroutine task queue. Tasks run one at a time in the order
// they were posted, so code that only runs on the loop needs no locking.
//
// The queue is unbounded: Post never blocks, which lets a task post further
// tasks without deadlocking the loop.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wakeup chan struct{}
}

// NewLoop creates an idle loop. Tasks are executed once Run is called.
func NewLoop() *Loop {
	return &Loop{wakeup: make(chan struct{}, 1)}
}

// Post enqueues fn. It is safe to call from any goroutine, including from a
// task running on the loop.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

// Do posts fn and waits until it has run or ctx is done. Calling Do from a
// task running on the same loop deadlocks until ctx expires.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted tasks until ctx is cancelled. Tasks still queued when
// ctx is cancelled are dropped.
func (l *Loop) Run(ctx context.Context) {
	for {
		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			if ctx.Err() != nil {
				return
			}
			fn()
		}

		select {
		case <-ctx.Done():
			return
		case <-l.wakeup:
		}
	}
}

// Len returns the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}
