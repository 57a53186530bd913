package notify

import (
	"context"
	"log/slog"
)

const DefaultQueueSize = 64

// Queue hands tasks to a Worker.
type Queue struct {
	inbox chan *Task
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{inbox: make(chan *Task, size)}
}

// Enqueue blocks while the queue is full and gives up when ctx ends.
func (q *Queue) Enqueue(ctx context.Context, n Notification) (*Task, error) {
	task := newTask(n)
	select {
	case q.inbox <- task:
		return task, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Worker consumes tasks from a queue and sends them one at a time.
type Worker struct {
	sender Sender
	inbox  <-chan *Task
	logger *slog.Logger
}

func NewWorker(sender Sender, queue *Queue, logger *slog.Logger) *Worker {
	return &Worker{sender: sender, inbox: queue.inbox, logger: logger}
}

// Run processes tasks until ctx is cancelled. Send failures complete the
// task with the error and do not stop the worker.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-w.inbox:
			err := w.sender.Send(ctx, task.Notification)
			if err != nil {
				w.logger.ErrorContext(ctx, "notification failed",
					"email", task.Notification.Email,
					"error", err,
				)
			}
			task.complete(err)
		}
	}
}
