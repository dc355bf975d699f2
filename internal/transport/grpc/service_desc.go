package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "wellness.v1.WellnessService"

// WellnessServer is the RPC surface of the service.
// Handler implements it over the domain services and Client over a connection.
type WellnessServer interface {
	CreateMoodEntry(context.Context, *CreateMoodEntryRequest) (*MoodEntryResponse, error)
	ListMoodEntries(context.Context, *RangeRequest) (*MoodEntriesResponse, error)
	UpdateMoodEntry(context.Context, *UpdateMoodEntryRequest) (*MoodEntryResponse, error)

	CreateMedication(context.Context, *CreateIntakeRequest) (*IntakeResponse, error)
	ListMedications(context.Context, *ListItemsRequest) (*IntakesResponse, error)
	UpdateMedication(context.Context, *UpdateIntakeRequest) (*IntakeResponse, error)
	LogMedication(context.Context, *LogIntakeRequest) (*IntakeLogResponse, error)
	ListMedicationLogs(context.Context, *RangeRequest) (*IntakeLogsResponse, error)

	CreateSupplement(context.Context, *CreateIntakeRequest) (*IntakeResponse, error)
	ListSupplements(context.Context, *ListItemsRequest) (*IntakesResponse, error)
	UpdateSupplement(context.Context, *UpdateIntakeRequest) (*IntakeResponse, error)
	LogSupplement(context.Context, *LogIntakeRequest) (*IntakeLogResponse, error)
	ListSupplementLogs(context.Context, *RangeRequest) (*IntakeLogsResponse, error)

	CreateHabit(context.Context, *CreateHabitRequest) (*HabitResponse, error)
	ListHabits(context.Context, *ListItemsRequest) (*HabitsResponse, error)
	UpdateHabit(context.Context, *UpdateHabitRequest) (*HabitResponse, error)
	LogHabit(context.Context, *LogHabitRequest) (*HabitLogResponse, error)
	ListHabitLogs(context.Context, *RangeRequest) (*HabitLogsResponse, error)

	CreateReminder(context.Context, *CreateReminderRequest) (*ReminderResponse, error)
	ListReminders(context.Context, *ListItemsRequest) (*RemindersResponse, error)
	UpdateReminder(context.Context, *UpdateReminderRequest) (*ReminderResponse, error)

	GetMoodAnalytics(context.Context, *AnalyticsRequest) (*MoodAnalyticsResponse, error)
	GetHabitAnalytics(context.Context, *AnalyticsRequest) (*HabitAnalyticsResponse, error)
	GetMedicationAdherence(context.Context, *AnalyticsRequest) (*AdherenceResponse, error)
	GetSupplementAdherence(context.Context, *AnalyticsRequest) (*AdherenceResponse, error)
	GetOverview(context.Context, *AnalyticsRequest) (*OverviewResponse, error)

	ExportData(context.Context, *ExportRequest) (*ExportResponse, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*NotificationsResponse, error)
}

// ServiceDesc describes WellnessServer for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WellnessServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateMoodEntry", WellnessServer.CreateMoodEntry),
		unary("ListMoodEntries", WellnessServer.ListMoodEntries),
		unary("UpdateMoodEntry", WellnessServer.UpdateMoodEntry),

		unary("CreateMedication", WellnessServer.CreateMedication),
		unary("ListMedications", WellnessServer.ListMedications),
		unary("UpdateMedication", WellnessServer.UpdateMedication),
		unary("LogMedication", WellnessServer.LogMedication),
		unary("ListMedicationLogs", WellnessServer.ListMedicationLogs),

		unary("CreateSupplement", WellnessServer.CreateSupplement),
		unary("ListSupplements", WellnessServer.ListSupplements),
		unary("UpdateSupplement", WellnessServer.UpdateSupplement),
		unary("LogSupplement", WellnessServer.LogSupplement),
		unary("ListSupplementLogs", WellnessServer.ListSupplementLogs),

		unary("CreateHabit", WellnessServer.CreateHabit),
		unary("ListHabits", WellnessServer.ListHabits),
		unary("UpdateHabit", WellnessServer.UpdateHabit),
		unary("LogHabit", WellnessServer.LogHabit),
		unary("ListHabitLogs", WellnessServer.ListHabitLogs),

		unary("CreateReminder", WellnessServer.CreateReminder),
		unary("ListReminders", WellnessServer.ListReminders),
		unary("UpdateReminder", WellnessServer.UpdateReminder),

		unary("GetMoodAnalytics", WellnessServer.GetMoodAnalytics),
		unary("GetHabitAnalytics", WellnessServer.GetHabitAnalytics),
		unary("GetMedicationAdherence", WellnessServer.GetMedicationAdherence),
		unary("GetSupplementAdherence", WellnessServer.GetSupplementAdherence),
		unary("GetOverview", WellnessServer.GetOverview),

		unary("ExportData", WellnessServer.ExportData),
		unary("ListNotifications", WellnessServer.ListNotifications),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterWellnessServer registers srv on s
func RegisterWellnessServer(s grpc.ServiceRegistrar, srv WellnessServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary adapts a typed WellnessServer method to a grpc.MethodDesc
func unary[Req, Resp any](name string, call func(WellnessServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, status.Error(codes.InvalidArgument, status.Convert(err).Message())
			}
			if interceptor == nil {
				return call(srv.(WellnessServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(WellnessServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
