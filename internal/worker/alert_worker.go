package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts: composes an email for
// the configured alert recipient and sends it through the SMTP mailer,
// guarded by a circuit breaker. Transient failures re-enqueue the job
// with exponential backoff; after maxAlertAttempts the job is parked on
// the dead-letter list.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storehub/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxAlertAttempts = 3

// LowStockAlertPayload is the job envelope for a single stock alert.
type LowStockAlertPayload struct {
	BranchID    int    `json:"branch_id"`
	BranchName  string `json:"branch_name"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	Threshold   string `json:"threshold"`
}

// LowStockWorker sends stock alert emails.
type LowStockWorker struct {
	rdb     *redis.Client
	mailer  *infra.Mailer
	breaker *infra.CircuitBreaker
	toEmail string
}

func NewLowStockWorker(rdb *redis.Client, mailer *infra.Mailer, breaker *infra.CircuitBreaker, toEmail string) *LowStockWorker {
	return &LowStockWorker{rdb: rdb, mailer: mailer, breaker: breaker, toEmail: toEmail}
}

// Process sends one alert email. The SMTP call goes through the circuit
// breaker so a downed relay fails fast instead of blocking the pool.
func (w *LowStockWorker) Process(ctx context.Context, job Job) {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return
	}
	if w.toEmail == "" {
		log.Warn().Msg("alert_worker: no alert recipient configured, dropping job")
		return
	}

	subject := fmt.Sprintf("Low stock: %s at %s", payload.ProductName, payload.BranchName)
	body := fmt.Sprintf(
		"Product %q (id %d) at branch %q (id %d) is down to %s units, at or below the minimum threshold of %s.\n\nStoreHub inventory alerts",
		payload.ProductName, payload.ProductID,
		payload.BranchName, payload.BranchID,
		payload.Quantity, payload.Threshold,
	)

	err := w.breaker.Execute(func() error {
		return w.mailer.Send(w.toEmail, subject, body, "")
	})
	if err == nil {
		log.Info().Str("product", payload.ProductName).Int("branch_id", payload.BranchID).Msg("alert_worker: alert sent")
		return
	}

	if errors.Is(err, infra.ErrCircuitOpen) {
		log.Warn().Msg("alert_worker: circuit open, re-enqueueing without counting attempt")
		w.retryLater(ctx, job, 0)
		return
	}

	attempts := job.Attempts + 1
	log.Error().Err(err).Int("attempts", attempts).Msg("alert_worker: send failed")
	if attempts >= maxAlertAttempts {
		moveToDeadLetter(ctx, w.rdb, QueueAlerts, job.Type, job.Payload, err.Error(), attempts)
		return
	}
	job.Attempts = attempts
	w.retryLater(ctx, job, attempts-1)
}

// retryLater re-enqueues after an exponential delay (1s, 2s, 4s …) so a
// flapping relay is not hammered. The sleep happens on the worker
// goroutine; with BRPOP-based workers that only delays this one slot.
func (w *LowStockWorker) retryLater(ctx context.Context, job Job, attempt int) {
	wait := time.Duration(1<<uint(attempt)) * time.Second
	select {
	case <-ctx.Done():
		return
	case <-time.After(wait):
	}
	if err := requeue(ctx, w.rdb, QueueAlerts, job); err != nil {
		log.Error().Err(err).Msg("alert_worker: re-enqueue failed")
	}
}
