package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"
	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/infrastructure/sqlite"
	"wellness-service/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "wellness.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	moodRepo := sqlite.NewMoodRepository(store)
	medications := sqlite.NewMedicationRepository(store)
	supplements := sqlite.NewSupplementRepository(store)
	habitRepo := sqlite.NewHabitRepository(store)
	reminderRepo := sqlite.NewReminderRepository(store)

	notifications := service.NewNotificationService(sqlite.NewNotificationRepository(store), nil, nil)

	return NewHandler(Services{
		Mood:          service.NewMoodService(moodRepo),
		Medications:   service.NewIntakeService(medications),
		Supplements:   service.NewIntakeService(supplements),
		Habits:        service.NewHabitService(habitRepo),
		Reminders:     service.NewReminderService(reminderRepo, service.NewDirectPublisher(notifications), nil, time.UTC, time.Minute),
		Analytics:     service.NewAnalyticsService(moodRepo, habitRepo, medications, supplements, time.UTC),
		Export:        service.NewExportService(moodRepo, medications, supplements, habitRepo, reminderRepo),
		Notifications: notifications,
	})
}

// startServer serves handler over an in-memory listener and returns a connected client
func startServer(t *testing.T, handler WellnessServer) *Client {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := NewServer(handler, &config.GRPCConfig{Timeout: 5 * time.Second})
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	client, err := Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	}))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if got := status.Code(err); got != code {
		t.Errorf("code = %v (err %v), want %v", got, err, code)
	}
}

func TestMoodOverGRPC(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, newTestHandler(t))

	notes := "calm"
	created, err := client.CreateMoodEntry(ctx, &CreateMoodEntryRequest{UserID: "alice", MoodScore: 7, Notes: &notes})
	if err != nil {
		t.Fatalf("CreateMoodEntry: %v", err)
	}
	if created.Entry.MoodScore != 7 || created.Entry.Notes == nil || *created.Entry.Notes != "calm" {
		t.Errorf("created = %+v", created.Entry)
	}

	list, err := client.ListMoodEntries(ctx, &RangeRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("ListMoodEntries: %v", err)
	}
	if len(list.Entries) != 1 || list.Entries[0].ID != created.Entry.ID {
		t.Errorf("entries = %v", list.Entries)
	}
	if !list.Entries[0].CreatedAt.Equal(created.Entry.CreatedAt) {
		t.Errorf("created_at changed over the wire: %v vs %v", list.Entries[0].CreatedAt, created.Entry.CreatedAt)
	}

	score := 9
	_, err = client.UpdateMoodEntry(ctx, &UpdateMoodEntryRequest{ID: created.Entry.ID.String(), UserID: "bob", MoodScore: &score})
	wantCode(t, err, codes.NotFound)

	_, err = client.CreateMoodEntry(ctx, &CreateMoodEntryRequest{UserID: "alice", MoodScore: 11})
	wantCode(t, err, codes.InvalidArgument)

	_, err = client.ListMoodEntries(ctx, &RangeRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestLogOwnershipOverGRPC(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, newTestHandler(t))

	med, err := client.CreateMedication(ctx, &CreateIntakeRequest{UserID: "alice", Name: "Levothyroxine", Frequency: "daily"})
	if err != nil {
		t.Fatalf("CreateMedication: %v", err)
	}

	_, err = client.LogMedication(ctx, &LogIntakeRequest{ItemID: med.Item.ID.String(), UserID: "bob"})
	wantCode(t, err, codes.PermissionDenied)

	_, err = client.LogSupplement(ctx, &LogIntakeRequest{ItemID: med.Item.ID.String(), UserID: "alice"})
	wantCode(t, err, codes.NotFound)

	_, err = client.LogMedication(ctx, &LogIntakeRequest{ItemID: "not-a-uuid", UserID: "alice"})
	wantCode(t, err, codes.InvalidArgument)

	logged, err := client.LogMedication(ctx, &LogIntakeRequest{ItemID: med.Item.ID.String(), UserID: "alice"})
	if err != nil {
		t.Fatalf("LogMedication: %v", err)
	}
	if logged.Log.Kind != entity.IntakeKindMedication {
		t.Errorf("log kind = %q", logged.Log.Kind)
	}
}

func TestExplicitFrequencyOverGRPC(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, newTestHandler(t))

	resp, err := client.CreateSupplement(ctx, &CreateIntakeRequest{
		UserID: "alice", Name: "Iron", Frequency: "Mon/Wed/Fri", FrequencyKind: "weekly", FrequencyTimes: 3,
	})
	if err != nil {
		t.Fatalf("CreateSupplement: %v", err)
	}
	want := entity.Frequency{Kind: entity.FrequencyWeekly, Times: 3, Label: "Mon/Wed/Fri"}
	if resp.Item.Frequency != want {
		t.Errorf("frequency = %+v, want %+v", resp.Item.Frequency, want)
	}

	_, err = client.CreateSupplement(ctx, &CreateIntakeRequest{UserID: "alice", Name: "Zinc", FrequencyKind: "hourly", FrequencyTimes: 1})
	wantCode(t, err, codes.InvalidArgument)
}

func TestAnalyticsAndExportOverGRPC(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, newTestHandler(t))

	habit, err := client.CreateHabit(ctx, &CreateHabitRequest{UserID: "alice", Name: "Stretch"})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	for d := 1; d <= 3; d++ {
		at := time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC)
		if _, err := client.LogHabit(ctx, &LogHabitRequest{HabitID: habit.Habit.ID.String(), UserID: "alice", CompletedAt: &at}); err != nil {
			t.Fatalf("LogHabit: %v", err)
		}
	}

	overview, err := client.GetOverview(ctx, &AnalyticsRequest{UserID: "alice", StartDate: "2026-03-01", EndDate: "2026-03-03"})
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if got := overview.Overview.Habits.OverallCompletionRate; got != 100 {
		t.Errorf("overall completion = %v, want 100", got)
	}
	if got := overview.Overview.Habits.Habits[0].CurrentStreak; got != 3 {
		t.Errorf("current streak = %v, want 3", got)
	}

	_, err = client.GetMoodAnalytics(ctx, &AnalyticsRequest{UserID: "alice", StartDate: "2026-03-05", EndDate: "2026-03-01"})
	wantCode(t, err, codes.InvalidArgument)

	export, err := client.ExportData(ctx, &ExportRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("ExportData: %v", err)
	}
	if len(export.Snapshot.Habits) != 1 || len(export.Snapshot.HabitLogs) != 3 {
		t.Errorf("snapshot = %d habits, %d logs", len(export.Snapshot.Habits), len(export.Snapshot.HabitLogs))
	}
	if export.Snapshot.MoodEntries == nil || export.Snapshot.Reminders == nil {
		t.Error("empty lists should be present, not null")
	}
}

func TestRemindersOverGRPC(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, newTestHandler(t))

	created, err := client.CreateReminder(ctx, &CreateReminderRequest{
		UserID: "alice", Title: "Journal", ReminderTime: "21:30", DaysOfWeek: []int32{5, 1, 1},
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if got := created.Reminder.DaysOfWeek; len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("days = %v, want [1 5]", got)
	}
	if created.Reminder.ReminderType != entity.ReminderTypeGeneral {
		t.Errorf("type = %q, want general", created.Reminder.ReminderType)
	}

	inactive := false
	if _, err := client.UpdateReminder(ctx, &UpdateReminderRequest{ID: created.Reminder.ID.String(), UserID: "alice", IsActive: &inactive}); err != nil {
		t.Fatalf("UpdateReminder: %v", err)
	}

	active, err := client.ListReminders(ctx, &ListItemsRequest{UserID: "alice", ActiveOnly: true})
	if err != nil {
		t.Fatalf("ListReminders: %v", err)
	}
	if len(active.Reminders) != 0 {
		t.Errorf("active reminders = %v, want none", active.Reminders)
	}

	_, err = client.CreateReminder(ctx, &CreateReminderRequest{UserID: "alice", Title: "Bad", ReminderTime: "24:00", DaysOfWeek: []int32{1}})
	wantCode(t, err, codes.InvalidArgument)

	badTarget := "nope"
	_, err = client.CreateReminder(ctx, &CreateReminderRequest{UserID: "alice", Title: "Bad", ReminderTime: "08:00", DaysOfWeek: []int32{1}, TargetID: &badTarget})
	wantCode(t, err, codes.InvalidArgument)
}

func TestHealthService(t *testing.T) {
	client := startServer(t, newTestHandler(t))

	resp, err := grpc_health_v1.NewHealthClient(client.Conn()).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("status = %v, want SERVING", resp.Status)
	}
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("%w: bad score", entity.ErrValidation), codes.InvalidArgument},
		{fmt.Errorf("habit x: %w", entity.ErrNotFound), codes.NotFound},
		{entity.ErrOwnershipViolation, codes.PermissionDenied},
		{fmt.Errorf("query: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{errors.New("disk on fire"), codes.Internal},
	}

	for _, tt := range tests {
		if got := status.Code(toStatus(tt.err)); got != tt.want {
			t.Errorf("toStatus(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}

	if msg := status.Convert(toStatus(errors.New("secret detail"))).Message(); msg != "internal error" {
		t.Errorf("internal message = %q, should not leak the cause", msg)
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := recoveryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: fullMethod("ExportData")}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})
	wantCode(t, err, codes.Internal)
}

func TestTimeoutInterceptorAddsDeadline(t *testing.T) {
	interceptor := timeoutInterceptor(time.Second)

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req any) (any, error) {
		if _, ok := ctx.Deadline(); !ok {
			return nil, errors.New("no deadline")
		}
		return nil, nil
	})
	if err != nil {
		t.Error(err)
	}
}

func TestMalformedRequestIsInvalidArgument(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, newTestHandler(t))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"fractional score", map[string]any{"user_id": "u1", "mood_score": 5.5}},
		{"string score", map[string]any{"user_id": "u1", "mood_score": "five"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp MoodEntryResponse
			err := client.Conn().Invoke(ctx, fullMethod("CreateMoodEntry"), tt.body, &resp, grpc.CallContentSubtype(codecName))
			wantCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestCodecUnmarshalError(t *testing.T) {
	var req CreateMoodEntryRequest
	err := jsonCodec{}.Unmarshal([]byte(`{"mood_score":5.5}`), &req)
	wantCode(t, err, codes.InvalidArgument)

	if err := (jsonCodec{}).Unmarshal(nil, &req); err != nil {
		t.Errorf("empty payload: %v", err)
	}
}
