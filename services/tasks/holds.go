package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"courtshare/models"
)

// TypeHoldExpire is the task type for releasing unpaid booking holds.
const TypeHoldExpire = "hold:expire"

// NewHoldExpiryTask builds the task that releases a pending hold if it
// is still unpaid when the hold TTL elapses.
func NewHoldExpiryTask(payload models.HoldExpiryPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeHoldExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}
	return task, opts, nil
}
