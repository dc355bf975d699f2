package cron

import (
	"context"
	"errors"
	"testing"
	"time"
	"wellness-service/internal/domain/service"
)

type fakeReminderService struct {
	service.ReminderService
	calls []time.Time
	err   error
}

func (f *fakeReminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("dispatch without deadline")
	}
	f.calls = append(f.calls, now)
	return len(f.calls), f.err
}

func TestReminderDispatcherDispatch(t *testing.T) {
	fixed := time.Date(2026, 3, 4, 7, 0, 5, 0, time.UTC)
	svc := &fakeReminderService{}
	d := NewReminderDispatcher(svc, "* * * * *", time.UTC, time.Second)
	d.now = func() time.Time { return fixed }

	d.dispatch()
	svc.err = errors.New("publish failed")
	d.dispatch()

	if len(svc.calls) != 2 {
		t.Fatalf("DispatchDue called %d times, want 2", len(svc.calls))
	}
	if !svc.calls[0].Equal(fixed) {
		t.Errorf("DispatchDue now = %v, want %v", svc.calls[0], fixed)
	}
}

func TestReminderDispatcherRejectsBadSpec(t *testing.T) {
	d := NewReminderDispatcher(&fakeReminderService{}, "every minute please", nil, 0)
	if err := d.Start(); err == nil {
		d.Stop()
		t.Fatal("Start accepted an invalid cron spec")
	}
}

func TestReminderDispatcherStartStop(t *testing.T) {
	d := NewReminderDispatcher(&fakeReminderService{}, "@every 1h", nil, 0)
	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	d.Stop()
}

func TestReminderDispatcherSchedulesInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	d := NewReminderDispatcher(&fakeReminderService{}, "0 9 * * *", tokyo, 0)

	if got := d.cron.Location(); got != tokyo {
		t.Fatalf("cron location = %v, want %v", got, tokyo)
	}

	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop()

	entries := d.cron.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	next := entries[0].Next.In(tokyo)
	if next.Hour() != 9 || next.Minute() != 0 {
		t.Errorf("next run = %v, want 09:00 in %v", next, tokyo)
	}
}
