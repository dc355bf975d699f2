package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/infrastructure/sqlite"
)

func TestCreateReminderValidation(t *testing.T) {
	svc := NewReminderService(sqlite.NewReminderRepository(setupStore(t)), &recordingPublisher{}, nil, time.UTC, time.Minute)
	ctx := context.Background()

	valid := service.CreateReminderInput{
		Title:        "Evening check-in",
		ReminderTime: "21:30",
		DaysOfWeek:   []int32{5, 1, 1, 3},
		ReminderType: entity.ReminderTypeMood,
	}

	reminder, err := svc.CreateReminder(ctx, "alice", valid)
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if !slices.Equal(reminder.DaysOfWeek, []int32{1, 3, 5}) {
		t.Errorf("DaysOfWeek = %v, want deduplicated [1 3 5]", reminder.DaysOfWeek)
	}

	tests := []struct {
		name   string
		mutate func(in *service.CreateReminderInput)
	}{
		{"empty title", func(in *service.CreateReminderInput) { in.Title = "" }},
		{"bad clock", func(in *service.CreateReminderInput) { in.ReminderTime = "24:00" }},
		{"no days", func(in *service.CreateReminderInput) { in.DaysOfWeek = nil }},
		{"day out of range", func(in *service.CreateReminderInput) { in.DaysOfWeek = []int32{7} }},
		{"unknown type", func(in *service.CreateReminderInput) { in.ReminderType = "exercise" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.DaysOfWeek = slices.Clone(valid.DaysOfWeek)
			tt.mutate(&in)
			if _, err := svc.CreateReminder(ctx, "alice", in); !errors.Is(err, entity.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUpdateReminder(t *testing.T) {
	svc := NewReminderService(sqlite.NewReminderRepository(setupStore(t)), &recordingPublisher{}, nil, time.UTC, time.Minute)
	ctx := context.Background()

	reminder, err := svc.CreateReminder(ctx, "alice", service.CreateReminderInput{
		Title: "Vitamins", ReminderTime: "08:00", DaysOfWeek: []int32{1}, ReminderType: entity.ReminderTypeSupplement,
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	updated, err := svc.UpdateReminder(ctx, reminder.ID, "alice", service.UpdateReminderInput{
		ReminderTime: ptr("08:30"),
		DaysOfWeek:   []int32{0, 6},
	})
	if err != nil {
		t.Fatalf("UpdateReminder: %v", err)
	}
	if updated.ReminderTime != "08:30" || !slices.Equal(updated.DaysOfWeek, []int32{0, 6}) || updated.Title != "Vitamins" {
		t.Errorf("unexpected update: %+v", updated)
	}

	if _, err := svc.UpdateReminder(ctx, reminder.ID, "alice", service.UpdateReminderInput{ReminderTime: ptr("8:30")}); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("bad clock err = %v, want ErrValidation", err)
	}
	if _, err := svc.UpdateReminder(ctx, reminder.ID, "mallory", service.UpdateReminderInput{}); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("foreign update err = %v, want ErrNotFound", err)
	}
}

func TestDispatchDue(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	publisher := &recordingPublisher{}
	lock := &memoryLock{}
	svc := NewReminderService(sqlite.NewReminderRepository(setupStore(t)), publisher, lock, berlin, time.Hour)
	ctx := context.Background()

	// Wednesday 08:00 in Berlin
	due, err := svc.CreateReminder(ctx, "alice", service.CreateReminderInput{
		Title: "Meds", Message: ptr("Take with food"), ReminderTime: "08:00",
		DaysOfWeek: []int32{3}, ReminderType: entity.ReminderTypeMedication,
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if _, err := svc.CreateReminder(ctx, "alice", service.CreateReminderInput{
		Title: "Weekend", ReminderTime: "08:00", DaysOfWeek: []int32{0, 6},
	}); err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	now := mustTime(t, "2026-03-04T07:00:20Z")

	n, err := svc.DispatchDue(ctx, now)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if n != 1 || len(publisher.events) != 1 {
		t.Fatalf("published %d events, want 1", n)
	}

	event := publisher.events[0]
	if event.ReminderID != due.ID || event.Message != "Take with food" || event.EventID == "" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.DueAt.Equal(mustTime(t, "2026-03-04T07:00:00Z")) {
		t.Errorf("DueAt = %v, want the start of the minute", event.DueAt)
	}

	t.Run("second tick in same minute is deduplicated", func(t *testing.T) {
		n, err := svc.DispatchDue(ctx, now.Add(30*time.Second))
		if err != nil {
			t.Fatalf("DispatchDue: %v", err)
		}
		if n != 0 {
			t.Errorf("published %d, want 0", n)
		}
	})

	t.Run("publish failure is reported", func(t *testing.T) {
		failing := &recordingPublisher{err: errors.New("broker down")}
		svc := NewReminderService(sqlite.NewReminderRepository(setupStore(t)), failing, nil, berlin, time.Hour)
		if _, err := svc.CreateReminder(ctx, "alice", service.CreateReminderInput{
			Title: "Meds", ReminderTime: "08:00", DaysOfWeek: []int32{3},
		}); err != nil {
			t.Fatalf("CreateReminder: %v", err)
		}
		if _, err := svc.DispatchDue(ctx, now); err == nil {
			t.Error("expected error")
		}
	})
}
