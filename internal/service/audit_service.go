package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/config"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
)

// auditTimeLayout matches the console's display format ("18/10 14:30").
const auditTimeLayout = "02/01 15:04"

// AuditIntent is the queued payload consumed by the audit worker.
type AuditIntent struct {
	Actor       string `json:"actor"`
	ActionLabel string `json:"action_label"`
	TargetLabel string `json:"target_label"`
}

// AuditService emits intent descriptions to the audit sink. Emission is
// fire-and-forget: the console appends a display row to the session's
// trail, enqueues the intent, and never blocks on or inspects the
// durable result.
type AuditService struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewAuditService(rdb *redis.Client, log zerolog.Logger) *AuditService {
	return &AuditService{
		rdb: rdb,
		log: log.With().Str("component", "audit_service").Logger(),
	}
}

// Emit records an intent in the session's audit trail and enqueues it
// for durable persistence. A queue failure is logged and swallowed — the
// triggering operation must not fail because of the sink.
func (s *AuditService) Emit(ctx context.Context, sess *session.Session, action, target string) {
	sess.AppendAudit(time.Now().Format(auditTimeLayout), sess.Email, action, target)

	payload, err := json.Marshal(AuditIntent{
		Actor:       sess.Email,
		ActionLabel: action,
		TargetLabel: target,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("marshal audit intent")
		return
	}

	if err := s.rdb.RPush(ctx, config.WorkerKey.AuditIntentQueue, payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("audit intent enqueue failed")
	}
}
