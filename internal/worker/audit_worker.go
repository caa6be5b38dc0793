package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/config"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/repository"
)

// AuditWorker consumes audit_intent_queue and appends rows to PostgreSQL.
// It is the durable half of the audit sink; the console only enqueues.
type AuditWorker struct {
	auditRepo *repository.AuditRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewAuditWorker creates a new AuditWorker.
func NewAuditWorker(auditRepo *repository.AuditRepository, rdb *redis.Client, log zerolog.Logger) *AuditWorker {
	return &AuditWorker{
		auditRepo: auditRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "audit_worker").Logger(),
	}
}

type intentPayload struct {
	Actor       string `json:"actor"`
	ActionLabel string `json:"action_label"`
	TargetLabel string `json:"target_label"`
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *AuditWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *AuditWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.AuditIntentQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var payload intentPayload
	if err := json.Unmarshal([]byte(result[1]), &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.auditRepo.Insert(ctx, payload.Actor, payload.ActionLabel, payload.TargetLabel); err != nil {
		w.log.Error().Err(err).
			Str("actor", payload.Actor).
			Str("action", payload.ActionLabel).
			Msg("Persist error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.AuditIntentQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

// drain processes all remaining items in the queue before shutdown.
func (w *AuditWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.AuditIntentQueue).Result()
		if err != nil {
			break
		}

		var payload intentPayload
		if err := json.Unmarshal([]byte(result), &payload); err != nil {
			w.log.Error().Err(err).Msg("Drain unmarshal error")
			continue
		}

		if err := w.auditRepo.Insert(ctx, payload.Actor, payload.ActionLabel, payload.TargetLabel); err != nil {
			w.log.Error().Err(err).Msg("Drain persist error")
			w.rdb.RPush(ctx, config.WorkerKey.AuditIntentQueue, result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
