package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/repository"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/session"
)

// fakePrefStore mirrors the Redis repository contract in memory: a
// missing key is repository.ErrNoPreference, never a failure.
type fakePrefStore struct {
	values   map[int]bool
	readErr  error
	writeErr error
}

func newFakePrefStore() *fakePrefStore {
	return &fakePrefStore{values: map[int]bool{}}
}

func (f *fakePrefStore) GetDarkMode(_ context.Context, adminID int) (bool, error) {
	if f.readErr != nil {
		return false, f.readErr
	}
	v, ok := f.values[adminID]
	if !ok {
		return false, repository.ErrNoPreference
	}
	return v, nil
}

func (f *fakePrefStore) SetDarkMode(_ context.Context, adminID int, dark bool) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.values[adminID] = dark
	return nil
}

func TestResolveDarkModeOrder(t *testing.T) {
	stored := func(v bool) *bool { return &v }

	tests := []struct {
		name    string
		stored  *bool
		readErr error
		ambient bool
		want    bool
	}{
		{name: "stored true beats light ambient", stored: stored(true), ambient: false, want: true},
		{name: "stored false beats dark ambient", stored: stored(false), ambient: true, want: false},
		{name: "nothing stored falls to dark ambient", ambient: true, want: true},
		{name: "nothing stored and light ambient", ambient: false, want: false},
		{name: "read failure degrades to ambient", readErr: errors.New("read timeout"), ambient: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakePrefStore()
			if tt.stored != nil {
				store.values[7] = *tt.stored
			}
			store.readErr = tt.readErr

			svc := NewPreferenceService(store, zerolog.Nop())
			if got := svc.ResolveDarkMode(context.Background(), 7, tt.ambient); got != tt.want {
				t.Fatalf("ResolveDarkMode = %t, want %t", got, tt.want)
			}
		})
	}
}

// A fresh session with no durable value starts from the ambient signal;
// the first toggle must both flip the session flag and leave the new
// literal in durable storage, which then outranks any ambient signal.
func TestDarkModeAmbientThenToggleWritesThrough(t *testing.T) {
	store := newFakePrefStore()
	svc := NewPreferenceService(store, zerolog.Nop())

	dark := svc.ResolveDarkMode(context.Background(), 7, true)
	if !dark {
		t.Fatal("ambient dark signal must win when nothing is stored")
	}

	sess := session.New(7, "admin@alif.id", dark, 1024)
	got, err := svc.Toggle(context.Background(), sess)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("toggle from dark must land on light")
	}
	if v, ok := store.values[7]; !ok || v {
		t.Fatalf("storage after toggle: value=%t present=%t, want stored false", v, ok)
	}

	if svc.ResolveDarkMode(context.Background(), 7, true) {
		t.Fatal("stored false must beat the ambient dark signal")
	}
}

func TestToggleSurfacesWriteFailure(t *testing.T) {
	store := newFakePrefStore()
	store.writeErr = errors.New("write timeout")
	svc := NewPreferenceService(store, zerolog.Nop())

	sess := session.New(7, "admin@alif.id", false, 1024)
	got, err := svc.Toggle(context.Background(), sess)
	if err == nil {
		t.Fatal("write failure must surface to the caller")
	}
	// The in-memory flag flipped before the write was attempted.
	if !got || !sess.DarkMode() {
		t.Fatal("session flag must flip even when the write-through fails")
	}
}
