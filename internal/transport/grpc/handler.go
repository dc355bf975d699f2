package grpc

import (
	"context"
	"errors"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/logger"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Services groups the domain services the handler serves
type Services struct {
	Mood          service.MoodService
	Medications   service.IntakeService
	Supplements   service.IntakeService
	Habits        service.HabitService
	Reminders     service.ReminderService
	Analytics     service.AnalyticsService
	Export        service.ExportService
	Notifications service.NotificationService
}

type Handler struct {
	svc Services
}

var _ WellnessServer = (*Handler)(nil)

func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// toStatus maps domain errors onto gRPC status codes
func toStatus(err error) error {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, entity.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, entity.ErrOwnershipViolation):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	default:
		logger.Error("internal error", "err", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func requireUser(userID string) error {
	if userID == "" {
		return status.Error(codes.InvalidArgument, "user_id is required")
	}
	return nil
}

func parseID(field, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return id, nil
}

func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := parseID(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func timeRange(req *RangeRequest) service.TimeRange {
	return service.TimeRange{From: req.From, To: req.To}
}

// Mood

func (h *Handler) CreateMoodEntry(ctx context.Context, req *CreateMoodEntryRequest) (*MoodEntryResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	entry, err := h.svc.Mood.CreateMoodEntry(ctx, req.UserID, req.MoodScore, req.Notes)
	if err != nil {
		return nil, toStatus(err)
	}

	return &MoodEntryResponse{Entry: entry}, nil
}

func (h *Handler) ListMoodEntries(ctx context.Context, req *RangeRequest) (*MoodEntriesResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	entries, err := h.svc.Mood.ListMoodEntries(ctx, req.UserID, timeRange(req))
	if err != nil {
		return nil, toStatus(err)
	}

	return &MoodEntriesResponse{Entries: entries}, nil
}

func (h *Handler) UpdateMoodEntry(ctx context.Context, req *UpdateMoodEntryRequest) (*MoodEntryResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	entry, err := h.svc.Mood.UpdateMoodEntry(ctx, id, req.UserID, req.MoodScore, req.Notes)
	if err != nil {
		return nil, toStatus(err)
	}

	return &MoodEntryResponse{Entry: entry}, nil
}

// Medications and supplements share one implementation over an IntakeService

func (h *Handler) CreateMedication(ctx context.Context, req *CreateIntakeRequest) (*IntakeResponse, error) {
	return createIntake(ctx, h.svc.Medications, req)
}

func (h *Handler) ListMedications(ctx context.Context, req *ListItemsRequest) (*IntakesResponse, error) {
	return listIntakes(ctx, h.svc.Medications, req)
}

func (h *Handler) UpdateMedication(ctx context.Context, req *UpdateIntakeRequest) (*IntakeResponse, error) {
	return updateIntake(ctx, h.svc.Medications, req)
}

func (h *Handler) LogMedication(ctx context.Context, req *LogIntakeRequest) (*IntakeLogResponse, error) {
	return logIntake(ctx, h.svc.Medications, req)
}

func (h *Handler) ListMedicationLogs(ctx context.Context, req *RangeRequest) (*IntakeLogsResponse, error) {
	return listIntakeLogs(ctx, h.svc.Medications, req)
}

func (h *Handler) CreateSupplement(ctx context.Context, req *CreateIntakeRequest) (*IntakeResponse, error) {
	return createIntake(ctx, h.svc.Supplements, req)
}

func (h *Handler) ListSupplements(ctx context.Context, req *ListItemsRequest) (*IntakesResponse, error) {
	return listIntakes(ctx, h.svc.Supplements, req)
}

func (h *Handler) UpdateSupplement(ctx context.Context, req *UpdateIntakeRequest) (*IntakeResponse, error) {
	return updateIntake(ctx, h.svc.Supplements, req)
}

func (h *Handler) LogSupplement(ctx context.Context, req *LogIntakeRequest) (*IntakeLogResponse, error) {
	return logIntake(ctx, h.svc.Supplements, req)
}

func (h *Handler) ListSupplementLogs(ctx context.Context, req *RangeRequest) (*IntakeLogsResponse, error) {
	return listIntakeLogs(ctx, h.svc.Supplements, req)
}

func explicitFrequency(kind string, times int, label string) *entity.Frequency {
	if kind == "" {
		return nil
	}
	return &entity.Frequency{Kind: entity.FrequencyKind(kind), Times: times, Label: label}
}

func createIntake(ctx context.Context, svc service.IntakeService, req *CreateIntakeRequest) (*IntakeResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	item, err := svc.CreateItem(ctx, req.UserID, service.CreateIntakeInput{
		Name:           req.Name,
		Dosage:         req.Dosage,
		FrequencyLabel: req.Frequency,
		Frequency:      explicitFrequency(req.FrequencyKind, req.FrequencyTimes, req.Frequency),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &IntakeResponse{Item: item}, nil
}

func listIntakes(ctx context.Context, svc service.IntakeService, req *ListItemsRequest) (*IntakesResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	items, err := svc.ListItems(ctx, req.UserID, req.ActiveOnly)
	if err != nil {
		return nil, toStatus(err)
	}

	return &IntakesResponse{Items: items}, nil
}

func updateIntake(ctx context.Context, svc service.IntakeService, req *UpdateIntakeRequest) (*IntakeResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	var label string
	if req.Frequency != nil {
		label = *req.Frequency
	}

	item, err := svc.UpdateItem(ctx, id, req.UserID, service.UpdateIntakeInput{
		Name:           req.Name,
		Dosage:         req.Dosage,
		FrequencyLabel: req.Frequency,
		Frequency:      explicitFrequency(req.FrequencyKind, req.FrequencyTimes, label),
		IsActive:       req.IsActive,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &IntakeResponse{Item: item}, nil
}

func logIntake(ctx context.Context, svc service.IntakeService, req *LogIntakeRequest) (*IntakeLogResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	itemID, err := parseID("item_id", req.ItemID)
	if err != nil {
		return nil, err
	}

	log, err := svc.LogIntake(ctx, itemID, req.UserID, req.TakenAt, req.Notes)
	if err != nil {
		return nil, toStatus(err)
	}

	return &IntakeLogResponse{Log: log}, nil
}

func listIntakeLogs(ctx context.Context, svc service.IntakeService, req *RangeRequest) (*IntakeLogsResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	logs, err := svc.ListLogs(ctx, req.UserID, timeRange(req))
	if err != nil {
		return nil, toStatus(err)
	}

	return &IntakeLogsResponse{Logs: logs}, nil
}

// Habits

func (h *Handler) CreateHabit(ctx context.Context, req *CreateHabitRequest) (*HabitResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	habit, err := h.svc.Habits.CreateHabit(ctx, req.UserID, req.Name, req.Description, req.TargetFrequency)
	if err != nil {
		return nil, toStatus(err)
	}

	return &HabitResponse{Habit: habit}, nil
}

func (h *Handler) ListHabits(ctx context.Context, req *ListItemsRequest) (*HabitsResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	habits, err := h.svc.Habits.ListHabits(ctx, req.UserID, req.ActiveOnly)
	if err != nil {
		return nil, toStatus(err)
	}

	return &HabitsResponse{Habits: habits}, nil
}

func (h *Handler) UpdateHabit(ctx context.Context, req *UpdateHabitRequest) (*HabitResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	habit, err := h.svc.Habits.UpdateHabit(ctx, id, req.UserID, service.UpdateHabitInput{
		Name:            req.Name,
		Description:     req.Description,
		TargetFrequency: req.TargetFrequency,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &HabitResponse{Habit: habit}, nil
}

func (h *Handler) LogHabit(ctx context.Context, req *LogHabitRequest) (*HabitLogResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	habitID, err := parseID("habit_id", req.HabitID)
	if err != nil {
		return nil, err
	}

	log, err := h.svc.Habits.LogHabit(ctx, habitID, req.UserID, req.CompletedAt, req.Notes)
	if err != nil {
		return nil, toStatus(err)
	}

	return &HabitLogResponse{Log: log}, nil
}

func (h *Handler) ListHabitLogs(ctx context.Context, req *RangeRequest) (*HabitLogsResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	logs, err := h.svc.Habits.ListHabitLogs(ctx, req.UserID, timeRange(req))
	if err != nil {
		return nil, toStatus(err)
	}

	return &HabitLogsResponse{Logs: logs}, nil
}

// Reminders

func (h *Handler) CreateReminder(ctx context.Context, req *CreateReminderRequest) (*ReminderResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	targetID, err := parseOptionalID("target_id", req.TargetID)
	if err != nil {
		return nil, err
	}

	reminder, err := h.svc.Reminders.CreateReminder(ctx, req.UserID, service.CreateReminderInput{
		Title:        req.Title,
		Message:      req.Message,
		ReminderTime: req.ReminderTime,
		DaysOfWeek:   req.DaysOfWeek,
		ReminderType: entity.ReminderType(req.ReminderType),
		TargetID:     targetID,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &ReminderResponse{Reminder: reminder}, nil
}

func (h *Handler) ListReminders(ctx context.Context, req *ListItemsRequest) (*RemindersResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	reminders, err := h.svc.Reminders.ListReminders(ctx, req.UserID, req.ActiveOnly)
	if err != nil {
		return nil, toStatus(err)
	}

	return &RemindersResponse{Reminders: reminders}, nil
}

func (h *Handler) UpdateReminder(ctx context.Context, req *UpdateReminderRequest) (*ReminderResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	targetID, err := parseOptionalID("target_id", req.TargetID)
	if err != nil {
		return nil, err
	}

	in := service.UpdateReminderInput{
		Title:        req.Title,
		Message:      req.Message,
		ReminderTime: req.ReminderTime,
		DaysOfWeek:   req.DaysOfWeek,
		TargetID:     targetID,
		IsActive:     req.IsActive,
	}
	if req.ReminderType != nil {
		reminderType := entity.ReminderType(*req.ReminderType)
		in.ReminderType = &reminderType
	}

	reminder, err := h.svc.Reminders.UpdateReminder(ctx, id, req.UserID, in)
	if err != nil {
		return nil, toStatus(err)
	}

	return &ReminderResponse{Reminder: reminder}, nil
}

// Analytics

func (h *Handler) GetMoodAnalytics(ctx context.Context, req *AnalyticsRequest) (*MoodAnalyticsResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	result, err := h.svc.Analytics.Mood(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, toStatus(err)
	}

	return &MoodAnalyticsResponse{Analytics: result}, nil
}

func (h *Handler) GetHabitAnalytics(ctx context.Context, req *AnalyticsRequest) (*HabitAnalyticsResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	result, err := h.svc.Analytics.Habits(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, toStatus(err)
	}

	return &HabitAnalyticsResponse{Analytics: result}, nil
}

func (h *Handler) GetMedicationAdherence(ctx context.Context, req *AnalyticsRequest) (*AdherenceResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	result, err := h.svc.Analytics.Medications(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, toStatus(err)
	}

	return &AdherenceResponse{Analytics: result}, nil
}

func (h *Handler) GetSupplementAdherence(ctx context.Context, req *AnalyticsRequest) (*AdherenceResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	result, err := h.svc.Analytics.Supplements(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, toStatus(err)
	}

	return &AdherenceResponse{Analytics: result}, nil
}

func (h *Handler) GetOverview(ctx context.Context, req *AnalyticsRequest) (*OverviewResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	overview, err := h.svc.Analytics.Overview(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, toStatus(err)
	}

	return &OverviewResponse{Overview: overview}, nil
}

// Export and notifications

func (h *Handler) ExportData(ctx context.Context, req *ExportRequest) (*ExportResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	snapshot, err := h.svc.Export.Export(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}

	return &ExportResponse{Snapshot: snapshot}, nil
}

func (h *Handler) ListNotifications(ctx context.Context, req *ListNotificationsRequest) (*NotificationsResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}

	notifications, err := h.svc.Notifications.ListNotifications(ctx, req.UserID, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}

	return &NotificationsResponse{Notifications: notifications}, nil
}
