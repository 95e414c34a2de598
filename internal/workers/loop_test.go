// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return l, cancel
}

func TestLoop_RunsTasksInOrder(t *testing.T) {
	l, _ := runLoop(t)

	var order []int
	for i := range 5 {
		l.Post(func() { order = append(order, i) })
	}
	require.NoError(t, l.Do(context.Background(), func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// TestLoop_PostFromTask verifies that a task may post a follow-up task, which
// runs after the tasks already queued.
func TestLoop_PostFromTask(t *testing.T) {
	l := NewLoop()

	var order []string
	l.Post(func() {
		order = append(order, "first")
		l.Post(func() { order = append(order, "nested") })
	})
	l.Post(func() { order = append(order, "second") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	require.NoError(t, l.Do(context.Background(), func() {}))
	cancel()
	<-done

	assert.Equal(t, []string{"first", "second", "nested"}, order)
}

func TestLoop_DoWaitsForTask(t *testing.T) {
	l, _ := runLoop(t)

	ran := false
	require.NoError(t, l.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestLoop_DoHonoursContext(t *testing.T) {
	l := NewLoop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.Do(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, l.Len())
}

func TestLoop_RunReturnsOnCancel(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
