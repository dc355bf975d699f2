package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client calls a remote WellnessServer
type Client struct {
	conn *grpc.ClientConn
}

var _ WellnessServer = (*Client)(nil)

// Dial creates a client for the service at target ("host:port")
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", target, err)
	}

	return &Client{conn: conn}, nil
}

// Conn exposes the underlying connection, e.g. for health checks
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any) (*Resp, error) {
	resp := new(Resp)
	if err := c.conn.Invoke(ctx, fullMethod(method), req, resp, grpc.CallContentSubtype(codecName)); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateMoodEntry(ctx context.Context, req *CreateMoodEntryRequest) (*MoodEntryResponse, error) {
	return invoke[MoodEntryResponse](ctx, c, "CreateMoodEntry", req)
}

func (c *Client) ListMoodEntries(ctx context.Context, req *RangeRequest) (*MoodEntriesResponse, error) {
	return invoke[MoodEntriesResponse](ctx, c, "ListMoodEntries", req)
}

func (c *Client) UpdateMoodEntry(ctx context.Context, req *UpdateMoodEntryRequest) (*MoodEntryResponse, error) {
	return invoke[MoodEntryResponse](ctx, c, "UpdateMoodEntry", req)
}

func (c *Client) CreateMedication(ctx context.Context, req *CreateIntakeRequest) (*IntakeResponse, error) {
	return invoke[IntakeResponse](ctx, c, "CreateMedication", req)
}

func (c *Client) ListMedications(ctx context.Context, req *ListItemsRequest) (*IntakesResponse, error) {
	return invoke[IntakesResponse](ctx, c, "ListMedications", req)
}

func (c *Client) UpdateMedication(ctx context.Context, req *UpdateIntakeRequest) (*IntakeResponse, error) {
	return invoke[IntakeResponse](ctx, c, "UpdateMedication", req)
}

func (c *Client) LogMedication(ctx context.Context, req *LogIntakeRequest) (*IntakeLogResponse, error) {
	return invoke[IntakeLogResponse](ctx, c, "LogMedication", req)
}

func (c *Client) ListMedicationLogs(ctx context.Context, req *RangeRequest) (*IntakeLogsResponse, error) {
	return invoke[IntakeLogsResponse](ctx, c, "ListMedicationLogs", req)
}

func (c *Client) CreateSupplement(ctx context.Context, req *CreateIntakeRequest) (*IntakeResponse, error) {
	return invoke[IntakeResponse](ctx, c, "CreateSupplement", req)
}

func (c *Client) ListSupplements(ctx context.Context, req *ListItemsRequest) (*IntakesResponse, error) {
	return invoke[IntakesResponse](ctx, c, "ListSupplements", req)
}

func (c *Client) UpdateSupplement(ctx context.Context, req *UpdateIntakeRequest) (*IntakeResponse, error) {
	return invoke[IntakeResponse](ctx, c, "UpdateSupplement", req)
}

func (c *Client) LogSupplement(ctx context.Context, req *LogIntakeRequest) (*IntakeLogResponse, error) {
	return invoke[IntakeLogResponse](ctx, c, "LogSupplement", req)
}

func (c *Client) ListSupplementLogs(ctx context.Context, req *RangeRequest) (*IntakeLogsResponse, error) {
	return invoke[IntakeLogsResponse](ctx, c, "ListSupplementLogs", req)
}

func (c *Client) CreateHabit(ctx context.Context, req *CreateHabitRequest) (*HabitResponse, error) {
	return invoke[HabitResponse](ctx, c, "CreateHabit", req)
}

func (c *Client) ListHabits(ctx context.Context, req *ListItemsRequest) (*HabitsResponse, error) {
	return invoke[HabitsResponse](ctx, c, "ListHabits", req)
}

func (c *Client) UpdateHabit(ctx context.Context, req *UpdateHabitRequest) (*HabitResponse, error) {
	return invoke[HabitResponse](ctx, c, "UpdateHabit", req)
}

func (c *Client) LogHabit(ctx context.Context, req *LogHabitRequest) (*HabitLogResponse, error) {
	return invoke[HabitLogResponse](ctx, c, "LogHabit", req)
}

func (c *Client) ListHabitLogs(ctx context.Context, req *RangeRequest) (*HabitLogsResponse, error) {
	return invoke[HabitLogsResponse](ctx, c, "ListHabitLogs", req)
}

func (c *Client) CreateReminder(ctx context.Context, req *CreateReminderRequest) (*ReminderResponse, error) {
	return invoke[ReminderResponse](ctx, c, "CreateReminder", req)
}

func (c *Client) ListReminders(ctx context.Context, req *ListItemsRequest) (*RemindersResponse, error) {
	return invoke[RemindersResponse](ctx, c, "ListReminders", req)
}

func (c *Client) UpdateReminder(ctx context.Context, req *UpdateReminderRequest) (*ReminderResponse, error) {
	return invoke[ReminderResponse](ctx, c, "UpdateReminder", req)
}

func (c *Client) GetMoodAnalytics(ctx context.Context, req *AnalyticsRequest) (*MoodAnalyticsResponse, error) {
	return invoke[MoodAnalyticsResponse](ctx, c, "GetMoodAnalytics", req)
}

func (c *Client) GetHabitAnalytics(ctx context.Context, req *AnalyticsRequest) (*HabitAnalyticsResponse, error) {
	return invoke[HabitAnalyticsResponse](ctx, c, "GetHabitAnalytics", req)
}

func (c *Client) GetMedicationAdherence(ctx context.Context, req *AnalyticsRequest) (*AdherenceResponse, error) {
	return invoke[AdherenceResponse](ctx, c, "GetMedicationAdherence", req)
}

func (c *Client) GetSupplementAdherence(ctx context.Context, req *AnalyticsRequest) (*AdherenceResponse, error) {
	return invoke[AdherenceResponse](ctx, c, "GetSupplementAdherence", req)
}

func (c *Client) GetOverview(ctx context.Context, req *AnalyticsRequest) (*OverviewResponse, error) {
	return invoke[OverviewResponse](ctx, c, "GetOverview", req)
}

func (c *Client) ExportData(ctx context.Context, req *ExportRequest) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c, "ExportData", req)
}

func (c *Client) ListNotifications(ctx context.Context, req *ListNotificationsRequest) (*NotificationsResponse, error) {
	return invoke[NotificationsResponse](ctx, c, "ListNotifications", req)
}
