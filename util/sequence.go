package util

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Action is one step of a callback driven chain. It must call done exactly
// once, either before returning or later from any goroutine, for the chain
// to move on. Calls after the first are ignored.
type Action func(done func())

// Queue holds actions that are consumed from the front as they run.
//
// A Queue must not be Run again while a previous Run is still waiting on an
// action.
type Queue struct {
	mu      sync.Mutex
	actions []Action
}

// NewQueue returns a queue holding actions in order. Nil actions are dropped.
func NewQueue(actions ...Action) *Queue {
	q := &Queue{}
	q.Push(actions...)
	return q
}

// Push appends actions to the back of the queue. Nil actions are dropped.
func (q *Queue) Push(actions ...Action) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, a := range actions {
		if a != nil {
			q.actions = append(q.actions, a)
		}
	}
}

// Len returns the number of actions that have not been started.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}

func (q *Queue) pop() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.actions) == 0 {
		return nil, false
	}
	a := q.actions[0]
	q.actions[0] = nil
	q.actions = q.actions[1:]
	return a, true
}

// Run starts the front action and each following one only after the
// previous action called done. Once the queue is empty callback is invoked,
// if it is not nil.
//
// Run returns as soon as an action leaves done for later; the chain then
// continues on the goroutine that calls done. An action that never calls
// done stalls the chain for good. A panic inside an action propagates to the
// goroutine driving the chain.
func (q *Queue) Run(callback func()) {
	for {
		action, ok := q.pop()
		if !ok {
			if callback != nil {
				callback()
			}
			return
		}
		if !q.start(action, callback) {
			return
		}
	}
}

// start runs action and reports whether done fired before it returned. When
// it did not, the done callback resumes the chain itself.
func (q *Queue) start(action Action, callback func()) bool {
	var (
		mu       sync.Mutex
		once     sync.Once
		returned bool
		finished bool
	)
	action(func() {
		once.Do(func() {
			mu.Lock()
			if !returned {
				finished = true
				mu.Unlock()
				return
			}
			mu.Unlock()
			q.Run(callback)
		})
	})
	mu.Lock()
	defer mu.Unlock()
	returned = true
	return finished
}

// SequentialCall runs actions strictly one after another and then callback.
func SequentialCall(actions []Action, callback func()) {
	NewQueue(actions...).Run(callback)
}

// Wait runs actions like SequentialCall and blocks until the last one is
// done. If ctx ends first Wait returns ctx.Err() and actions that have not
// started yet are never started.
func Wait(ctx context.Context, actions ...Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q := NewQueue()
	for _, a := range actions {
		if a == nil {
			continue
		}
		q.Push(func(done func()) {
			if ctx.Err() != nil {
				return
			}
			a(done)
		})
	}

	finished := make(chan struct{})
	go q.Run(func() { close(finished) })

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		select {
		case <-finished:
			return nil
		default:
		}
		return ctx.Err()
	}
}

// Step is a unit of work for RunSteps.
type Step func(ctx context.Context) error

// RunSteps runs steps in order, one at a time, and stops at the first step
// that fails. The returned error names the zero based index of that step and
// wraps its error. Steps not yet started when ctx ends are skipped and the
// context error is returned.
func RunSteps(ctx context.Context, steps ...Step) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	for i, step := range steps {
		if step == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := step(gctx); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
