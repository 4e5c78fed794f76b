package worker

// Jobs that exhaust their retries land on a dead-letter list
// ("deadletter:{queue}") so an operator can inspect or replay them.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const deadLetterPrefix = "deadletter:"

// DeadLetter records a job that could not be processed, with enough
// context to diagnose and replay it by hand.
type DeadLetter struct {
	Queue    string          `json:"queue"`
	JobType  string          `json:"job_type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

func deadLetterKey(queue string) string { return deadLetterPrefix + queue }

// moveToDeadLetter parks a failed job on the dead-letter list. Errors are
// logged, not returned: there is nothing a worker can do about them.
func moveToDeadLetter(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	entry := DeadLetter{
		Queue:    queue,
		JobType:  jobType,
		Payload:  payload,
		Reason:   reason,
		Attempts: attempts,
		FailedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("deadletter: marshal entry")
		return
	}
	if err := rdb.LPush(ctx, deadLetterKey(queue), data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("deadletter: push entry")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("deadletter: job parked")
}

// DeadLetterCount reports how many jobs are parked for a queue. Exposed
// for health checks and monitoring.
func DeadLetterCount(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, deadLetterKey(queue)).Result()
}
