package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/infrastructure/sqlite"
)

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "wellness.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func ptr[T any](v T) *T {
	return &v
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time %q: %v", value, err)
	}
	return ts
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.ReminderEvent
	err    error
}

func (p *recordingPublisher) PublishReminder(ctx context.Context, event *entity.ReminderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type memoryLock struct {
	mu   sync.Mutex
	keys map[string]bool
}

func (l *memoryLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.keys == nil {
		l.keys = make(map[string]bool)
	}
	if l.keys[key] {
		return false, nil
	}
	l.keys[key] = true
	return true, nil
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendReminderEmail(ctx context.Context, to string, event *entity.ReminderEvent) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}
