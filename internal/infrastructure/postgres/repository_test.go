package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/infrastructure/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// setupPool connects to WELLNESS_TEST_DATABASE_URL and applies the schema.
// Each test uses a fresh user id so runs do not interfere.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("WELLNESS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("WELLNESS_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Bootstrap(ctx, pool); err != nil {
		t.Fatalf("failed to bootstrap schema: %v", err)
	}

	return pool
}

func testUser() string {
	return "test-" + uuid.NewString()
}

func day(d int, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestMoodRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMoodRepository(setupPool(t))
	user := testUser()

	older := &entity.MoodEntry{ID: uuid.New(), UserID: user, MoodScore: 4, CreatedAt: day(1, 8), UpdatedAt: day(1, 8)}
	newer := &entity.MoodEntry{ID: uuid.New(), UserID: user, MoodScore: 9, CreatedAt: day(5, 8), UpdatedAt: day(5, 8)}
	for _, e := range []*entity.MoodEntry{older, newer} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	entries, err := repo.List(ctx, repository.ForUser(user))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != newer.ID {
		t.Fatalf("List = %v, want newest first", entries)
	}
	if entries[0].CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", entries[0].CreatedAt.Location())
	}

	to := day(2, 0)
	entries, err = repo.List(ctx, repository.Filter{UserID: user, To: &to})
	if err != nil {
		t.Fatalf("List range: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != older.ID {
		t.Errorf("List range = %v, want only the older entry", entries)
	}

	if _, err := repo.GetByIDAndUserID(ctx, older.ID, "someone-else"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("GetByIDAndUserID other user: err = %v, want ErrNotFound", err)
	}

	older.MoodScore = 7
	older.UpdatedAt = day(6, 8)
	if err := repo.Update(ctx, older); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByIDAndUserID(ctx, older.ID, user)
	if err != nil {
		t.Fatalf("GetByIDAndUserID: %v", err)
	}
	if got.MoodScore != 7 || !got.UpdatedAt.Equal(day(6, 8)) {
		t.Errorf("updated entry = %+v", got)
	}
}

func TestIntakeRepository(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	medications := NewMedicationRepository(pool)
	supplements := NewSupplementRepository(pool)
	user := testUser()

	item := &entity.Intake{
		ID: uuid.New(), UserID: user, Kind: entity.IntakeKindMedication,
		Name: "Sertraline", Frequency: entity.ParseFrequency("twice daily"), IsActive: true,
		CreatedAt: day(1, 9), UpdatedAt: day(1, 9),
	}
	if err := medications.Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := medications.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Frequency != item.Frequency || got.Kind != entity.IntakeKindMedication {
		t.Errorf("GetByID = %+v, want frequency %+v", got, item.Frequency)
	}

	if _, err := supplements.GetByID(ctx, item.ID); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("supplement lookup of a medication: err = %v, want ErrNotFound", err)
	}

	log := &entity.IntakeLog{ID: uuid.New(), ItemID: item.ID, UserID: user, TakenAt: day(2, 8), CreatedAt: day(2, 8)}
	if err := medications.CreateLog(ctx, log); err != nil {
		t.Fatalf("CreateLog: %v", err)
	}
	logs, err := medications.ListLogs(ctx, repository.ForUser(user))
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 1 || logs[0].Kind != entity.IntakeKindMedication {
		t.Errorf("ListLogs = %v", logs)
	}

	item.IsActive = false
	item.UpdatedAt = day(3, 9)
	if err := medications.Update(ctx, item); err != nil {
		t.Fatalf("Update: %v", err)
	}
	active, err := medications.List(ctx, repository.Filter{UserID: user, ActiveOnly: true})
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("List active = %v, want none", active)
	}
}

func TestHabitRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepository(setupPool(t))
	user := testUser()

	habit := &entity.Habit{ID: uuid.New(), UserID: user, Name: "Walk", TargetFrequency: "daily", IsActive: true,
		CreatedAt: day(1, 7), UpdatedAt: day(1, 7)}
	if err := repo.Create(ctx, habit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for d := 1; d <= 3; d++ {
		log := &entity.HabitLog{ID: uuid.New(), HabitID: habit.ID, UserID: user, CompletedAt: day(d, 18), CreatedAt: day(d, 18)}
		if err := repo.CreateLog(ctx, log); err != nil {
			t.Fatalf("CreateLog: %v", err)
		}
	}

	from, to := day(2, 0), day(3, 23)
	logs, err := repo.ListLogs(ctx, repository.Filter{UserID: user, From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 2 || !logs[0].CompletedAt.Equal(day(3, 18)) {
		t.Errorf("ListLogs = %v, want days 3 and 2", logs)
	}

	habit.UserID = "someone-else"
	if err := repo.Update(ctx, habit); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Update by other user: err = %v, want ErrNotFound", err)
	}
}

func TestReminderRepositoryListDue(t *testing.T) {
	ctx := context.Background()
	repo := NewReminderRepository(setupPool(t))
	user := testUser()
	// unusual clock so rows left by other runs do not match
	clock := "03:17"

	target := uuid.New()
	weekdays := &entity.Reminder{ID: uuid.New(), UserID: user, Title: "Pills", ReminderTime: clock,
		DaysOfWeek: []int32{1, 2, 3, 4, 5}, ReminderType: entity.ReminderTypeMedication, TargetID: &target,
		IsActive: true, CreatedAt: day(1, 0), UpdatedAt: day(1, 0)}
	weekend := &entity.Reminder{ID: uuid.New(), UserID: user, Title: "Rest", ReminderTime: clock,
		DaysOfWeek: []int32{0, 6}, ReminderType: entity.ReminderTypeGeneral,
		IsActive: true, CreatedAt: day(1, 1), UpdatedAt: day(1, 1)}
	for _, r := range []*entity.Reminder{weekdays, weekend} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	due, err := repo.ListDue(ctx, time.Wednesday, clock)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	var mine []*entity.Reminder
	for _, r := range due {
		if r.UserID == user {
			mine = append(mine, r)
		}
	}
	if len(mine) != 1 || mine[0].ID != weekdays.ID {
		t.Fatalf("ListDue = %v, want the weekday reminder", mine)
	}
	if mine[0].TargetID == nil || *mine[0].TargetID != target {
		t.Errorf("TargetID = %v, want %v", mine[0].TargetID, target)
	}

	got, err := repo.GetByIDAndUserID(ctx, weekend.ID, user)
	if err != nil {
		t.Fatalf("GetByIDAndUserID: %v", err)
	}
	if got.TargetID != nil || len(got.DaysOfWeek) != 2 {
		t.Errorf("weekend reminder = %+v", got)
	}
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(setupPool(t))
	user := testUser()

	n := &entity.Notification{ID: uuid.New(), UserID: user, ReminderID: uuid.New(), EventID: uuid.NewString(),
		Status: entity.NotificationStatusPending, Subject: "Reminder: Pills", CreatedAt: day(4, 8), UpdatedAt: day(4, 8)}
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sentAt := day(4, 8).Add(time.Second)
	n.Status = entity.NotificationStatusSent
	n.SentAt = &sentAt
	n.UpdatedAt = sentAt
	if err := repo.UpdateStatus(ctx, n); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	list, err := repo.ListByUser(ctx, user, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].Status != entity.NotificationStatusSent || list[0].SentAt == nil {
		t.Errorf("ListByUser = %+v", list)
	}
}
