package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository persists audit intents into PostgreSQL. It is the
// durable half of the audit sink; the console itself only enqueues and
// never inspects the result.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Insert appends one audit row. The table is append-only; there are no
// update or delete statements anywhere in this service.
func (r *AuditRepository) Insert(ctx context.Context, actor, action, target string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_log (actor, action_label, target_label, created_at)
		 VALUES ($1, $2, $3, NOW())`,
		actor, action, target)
	return err
}
