package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
)

// recordingEmitter captures emitted intents instead of queueing them.
type recordingEmitter struct {
	intents []AuditIntent
}

func (r *recordingEmitter) Emit(_ context.Context, sess *session.Session, action, target string) {
	r.intents = append(r.intents, AuditIntent{
		Actor:       sess.Email,
		ActionLabel: action,
		TargetLabel: target,
	})
}

func (r *recordingEmitter) last(t *testing.T) AuditIntent {
	t.Helper()
	if len(r.intents) == 0 {
		t.Fatal("no intent emitted")
	}
	return r.intents[len(r.intents)-1]
}

func newTestConsole() (*ConsoleService, *recordingEmitter) {
	sessions := session.NewManager()
	sessions.Put(session.New(7, "admin@alif.id", false, 1024))
	rec := &recordingEmitter{}
	return NewConsoleService(sessions, nil, rec, zerolog.Nop()), rec
}

// Every intent targets the entity's display name, the reveal included.
func TestRevealCredentialAuditsDisplayName(t *testing.T) {
	console, rec := newTestConsole()

	value, err := console.RevealCredential(context.Background(), 7, model.KindTeacher, 1)
	if err != nil {
		t.Fatal(err)
	}
	if value != "password123" {
		t.Fatalf("revealed %q", value)
	}

	got := rec.last(t)
	if got.ActionLabel != "Lihat Kredensial" {
		t.Fatalf("action = %q", got.ActionLabel)
	}
	if got.TargetLabel != "Ani W." {
		t.Fatalf("target = %q, want the entity display name", got.TargetLabel)
	}
	if got.Actor != "admin@alif.id" {
		t.Fatalf("actor = %q", got.Actor)
	}
}

func TestEntityIntentAuditsDisplayName(t *testing.T) {
	console, rec := newTestConsole()

	if err := console.EmitEntityIntent(context.Background(), 7, model.IntentDelete, model.KindClass, 2); err != nil {
		t.Fatal(err)
	}

	got := rec.last(t)
	if got.ActionLabel != "Hapus Kelas" {
		t.Fatalf("action = %q", got.ActionLabel)
	}
	if got.TargetLabel != "B2" {
		t.Fatalf("target = %q, want the class name", got.TargetLabel)
	}
}
