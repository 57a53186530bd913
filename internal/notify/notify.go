// Package notify delivers customer notifications off the request path. Each
// enqueued notification is a Task the caller can wait on.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

type Notification struct {
	Email   string
	Message string
}

// Task tracks one notification through the worker.
type Task struct {
	Notification Notification

	done chan struct{}
	once sync.Once
	err  error
}

func newTask(n Notification) *Task {
	return &Task{Notification: n, done: make(chan struct{})}
}

// Done is closed once the task has been handled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx ends, and returns the send
// error or the context error.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task) complete(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Sender performs the actual delivery.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// LogSender records notifications in the log instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, n Notification) error {
	s.logger.InfoContext(ctx, "notification sent",
		"email", n.Email,
		"message_len", len(n.Message),
	)
	return nil
}
