package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"
	wellnessgrpc "wellness-service/internal/transport/grpc"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler translates REST calls into WellnessServer calls
type Handler struct {
	api     wellnessgrpc.WellnessServer
	timeout time.Duration
}

// NewHandler creates a handler over api, which may be the in-process
// gRPC handler or a remote client
func NewHandler(api wellnessgrpc.WellnessServer, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Handler{api: api, timeout: timeout}
}

// handleGRPCError maps a gRPC status onto an HTTP error response
func handleGRPCError(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var httpStatus int
	switch st.Code() {
	case codes.NotFound:
		httpStatus = http.StatusNotFound
	case codes.InvalidArgument:
		httpStatus = http.StatusBadRequest
	case codes.Unauthenticated:
		httpStatus = http.StatusUnauthorized
	case codes.PermissionDenied:
		httpStatus = http.StatusForbidden
	case codes.DeadlineExceeded:
		httpStatus = http.StatusGatewayTimeout
	default:
		httpStatus = http.StatusInternalServerError
	}

	c.JSON(httpStatus, gin.H{"error": st.Message()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// respond runs call and writes its result with code, or the mapped error
func respond[Resp any](h *Handler, c *gin.Context, code int, call func(ctx context.Context) (*Resp, error)) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := call(ctx)
	if err != nil {
		handleGRPCError(c, err)
		return
	}
	c.JSON(code, resp)
}

// rangeQuery reads optional RFC 3339 from/to query parameters
func rangeQuery(c *gin.Context) (*wellnessgrpc.RangeRequest, bool) {
	req := &wellnessgrpc.RangeRequest{UserID: currentUser(c)}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &req.From}, {"to", &req.To}} {
		value := c.Query(p.name)
		if value == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			badRequest(c, p.name+" must be an RFC 3339 timestamp")
			return nil, false
		}
		*p.dst = &t
	}
	return req, true
}

func listQuery(c *gin.Context) (*wellnessgrpc.ListItemsRequest, bool) {
	req := &wellnessgrpc.ListItemsRequest{UserID: currentUser(c)}
	if value := c.Query("active_only"); value != "" {
		active, err := strconv.ParseBool(value)
		if err != nil {
			badRequest(c, "active_only must be a boolean")
			return nil, false
		}
		req.ActiveOnly = active
	}
	return req, true
}

func analyticsQuery(c *gin.Context) *wellnessgrpc.AnalyticsRequest {
	return &wellnessgrpc.AnalyticsRequest{
		UserID:    currentUser(c),
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
	}
}

// bind decodes the JSON body into req
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, "invalid request body")
		return false
	}
	return true
}

// bindOptional is bind for bodies that may be absent, chunked requests included
func bindOptional(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid request body")
		return false
	}
	return true
}

// Mood

// CreateMoodEntry records a mood score
// @Summary Log mood
// @Tags mood
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{mood_score=int,notes=string} true "Mood entry"
// @Success 201 {object} object{entry=object}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/mood [post]
func (h *Handler) CreateMoodEntry(c *gin.Context) {
	var req wellnessgrpc.CreateMoodEntryRequest
	if !bind(c, &req) {
		return
	}
	req.UserID = currentUser(c)
	respond(h, c, http.StatusCreated, func(ctx context.Context) (*wellnessgrpc.MoodEntryResponse, error) {
		return h.api.CreateMoodEntry(ctx, &req)
	})
}

// ListMoodEntries lists mood entries newest first
// @Summary List mood entries
// @Tags mood
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Success 200 {object} object{entries=[]object}
// @Router /api/v1/mood [get]
func (h *Handler) ListMoodEntries(c *gin.Context) {
	req, ok := rangeQuery(c)
	if !ok {
		return
	}
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.MoodEntriesResponse, error) {
		return h.api.ListMoodEntries(ctx, req)
	})
}

// UpdateMoodEntry changes the score or notes of an entry
// @Summary Update mood entry
// @Tags mood
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body object{mood_score=int,notes=string} true "Fields to change"
// @Success 200 {object} object{entry=object}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/mood/{id} [patch]
func (h *Handler) UpdateMoodEntry(c *gin.Context) {
	var req wellnessgrpc.UpdateMoodEntryRequest
	if !bind(c, &req) {
		return
	}
	req.ID, req.UserID = c.Param("id"), currentUser(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.MoodEntryResponse, error) {
		return h.api.UpdateMoodEntry(ctx, &req)
	})
}

// intakeRoutes serves medications or supplements over the matching API methods
type intakeRoutes struct {
	h        *Handler
	create   func(context.Context, *wellnessgrpc.CreateIntakeRequest) (*wellnessgrpc.IntakeResponse, error)
	list     func(context.Context, *wellnessgrpc.ListItemsRequest) (*wellnessgrpc.IntakesResponse, error)
	update   func(context.Context, *wellnessgrpc.UpdateIntakeRequest) (*wellnessgrpc.IntakeResponse, error)
	log      func(context.Context, *wellnessgrpc.LogIntakeRequest) (*wellnessgrpc.IntakeLogResponse, error)
	listLogs func(context.Context, *wellnessgrpc.RangeRequest) (*wellnessgrpc.IntakeLogsResponse, error)
}

func (h *Handler) medications() *intakeRoutes {
	return &intakeRoutes{h, h.api.CreateMedication, h.api.ListMedications, h.api.UpdateMedication, h.api.LogMedication, h.api.ListMedicationLogs}
}

func (h *Handler) supplements() *intakeRoutes {
	return &intakeRoutes{h, h.api.CreateSupplement, h.api.ListSupplements, h.api.UpdateSupplement, h.api.LogSupplement, h.api.ListSupplementLogs}
}

// Create adds a medication or supplement
// @Summary Create medication or supplement
// @Description frequency is free text ("twice daily", "as needed"); frequency_kind and frequency_times set the schedule explicitly
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "medications or supplements"
// @Param request body object{name=string,dosage=string,frequency=string,frequency_kind=string,frequency_times=int} true "Item"
// @Success 201 {object} object{item=object}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/{kind} [post]
func (r *intakeRoutes) Create(c *gin.Context) {
	var req wellnessgrpc.CreateIntakeRequest
	if !bind(c, &req) {
		return
	}
	req.UserID = currentUser(c)
	respond(r.h, c, http.StatusCreated, func(ctx context.Context) (*wellnessgrpc.IntakeResponse, error) {
		return r.create(ctx, &req)
	})
}

// List lists medications or supplements
// @Summary List medications or supplements
// @Tags intake
// @Produce json
// @Security BearerAuth
// @Param kind path string true "medications or supplements"
// @Param active_only query bool false "Only active items"
// @Success 200 {object} object{items=[]object}
// @Router /api/v1/{kind} [get]
func (r *intakeRoutes) List(c *gin.Context) {
	req, ok := listQuery(c)
	if !ok {
		return
	}
	respond(r.h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.IntakesResponse, error) {
		return r.list(ctx, req)
	})
}

// Update changes a medication or supplement
// @Summary Update medication or supplement
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "medications or supplements"
// @Param id path string true "Item ID"
// @Param request body object{name=string,dosage=string,frequency=string,is_active=bool} true "Fields to change"
// @Success 200 {object} object{item=object}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/{kind}/{id} [patch]
func (r *intakeRoutes) Update(c *gin.Context) {
	var req wellnessgrpc.UpdateIntakeRequest
	if !bind(c, &req) {
		return
	}
	req.ID, req.UserID = c.Param("id"), currentUser(c)
	respond(r.h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.IntakeResponse, error) {
		return r.update(ctx, &req)
	})
}

// Log records a dose
// @Summary Log a dose
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "medications or supplements"
// @Param id path string true "Item ID"
// @Param request body object{taken_at=string,notes=string} false "Dose"
// @Success 201 {object} object{log=object}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/{kind}/{id}/logs [post]
func (r *intakeRoutes) Log(c *gin.Context) {
	var req wellnessgrpc.LogIntakeRequest
	if !bindOptional(c, &req) {
		return
	}
	req.ItemID, req.UserID = c.Param("id"), currentUser(c)
	respond(r.h, c, http.StatusCreated, func(ctx context.Context) (*wellnessgrpc.IntakeLogResponse, error) {
		return r.log(ctx, &req)
	})
}

// ListLogs lists doses newest first
// @Summary List doses
// @Tags intake
// @Produce json
// @Security BearerAuth
// @Param kind path string true "medications or supplements"
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Success 200 {object} object{logs=[]object}
// @Router /api/v1/{kind}/logs [get]
func (r *intakeRoutes) ListLogs(c *gin.Context) {
	req, ok := rangeQuery(c)
	if !ok {
		return
	}
	respond(r.h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.IntakeLogsResponse, error) {
		return r.listLogs(ctx, req)
	})
}

// Habits

// CreateHabit creates a habit
// @Summary Create habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,description=string,target_frequency=string} true "Habit"
// @Success 201 {object} object{habit=object}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/habits [post]
func (h *Handler) CreateHabit(c *gin.Context) {
	var req wellnessgrpc.CreateHabitRequest
	if !bind(c, &req) {
		return
	}
	req.UserID = currentUser(c)
	respond(h, c, http.StatusCreated, func(ctx context.Context) (*wellnessgrpc.HabitResponse, error) {
		return h.api.CreateHabit(ctx, &req)
	})
}

// ListHabits lists habits
// @Summary List habits
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param active_only query bool false "Only active habits"
// @Success 200 {object} object{habits=[]object}
// @Router /api/v1/habits [get]
func (h *Handler) ListHabits(c *gin.Context) {
	req, ok := listQuery(c)
	if !ok {
		return
	}
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.HabitsResponse, error) {
		return h.api.ListHabits(ctx, req)
	})
}

// UpdateHabit changes a habit
// @Summary Update habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Param request body object{name=string,description=string,target_frequency=string,is_active=bool} true "Fields to change"
// @Success 200 {object} object{habit=object}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/habits/{id} [patch]
func (h *Handler) UpdateHabit(c *gin.Context) {
	var req wellnessgrpc.UpdateHabitRequest
	if !bind(c, &req) {
		return
	}
	req.ID, req.UserID = c.Param("id"), currentUser(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.HabitResponse, error) {
		return h.api.UpdateHabit(ctx, &req)
	})
}

// LogHabit records a completion
// @Summary Log habit completion
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Param request body object{completed_at=string,notes=string} false "Completion"
// @Success 201 {object} object{log=object}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/habits/{id}/logs [post]
func (h *Handler) LogHabit(c *gin.Context) {
	var req wellnessgrpc.LogHabitRequest
	if !bindOptional(c, &req) {
		return
	}
	req.HabitID, req.UserID = c.Param("id"), currentUser(c)
	respond(h, c, http.StatusCreated, func(ctx context.Context) (*wellnessgrpc.HabitLogResponse, error) {
		return h.api.LogHabit(ctx, &req)
	})
}

// ListHabitLogs lists completions newest first
// @Summary List habit completions
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Success 200 {object} object{logs=[]object}
// @Router /api/v1/habits/logs [get]
func (h *Handler) ListHabitLogs(c *gin.Context) {
	req, ok := rangeQuery(c)
	if !ok {
		return
	}
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.HabitLogsResponse, error) {
		return h.api.ListHabitLogs(ctx, req)
	})
}

// Reminders

// CreateReminder creates a reminder
// @Summary Create reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,message=string,reminder_time=string,days_of_week=[]int,reminder_type=string,target_id=string} true "Reminder"
// @Success 201 {object} object{reminder=object}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/reminders [post]
func (h *Handler) CreateReminder(c *gin.Context) {
	var req wellnessgrpc.CreateReminderRequest
	if !bind(c, &req) {
		return
	}
	req.UserID = currentUser(c)
	respond(h, c, http.StatusCreated, func(ctx context.Context) (*wellnessgrpc.ReminderResponse, error) {
		return h.api.CreateReminder(ctx, &req)
	})
}

// ListReminders lists reminders
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param active_only query bool false "Only active reminders"
// @Success 200 {object} object{reminders=[]object}
// @Router /api/v1/reminders [get]
func (h *Handler) ListReminders(c *gin.Context) {
	req, ok := listQuery(c)
	if !ok {
		return
	}
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.RemindersResponse, error) {
		return h.api.ListReminders(ctx, req)
	})
}

// UpdateReminder changes a reminder
// @Summary Update reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body object{title=string,reminder_time=string,days_of_week=[]int,is_active=bool} true "Fields to change"
// @Success 200 {object} object{reminder=object}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/reminders/{id} [patch]
func (h *Handler) UpdateReminder(c *gin.Context) {
	var req wellnessgrpc.UpdateReminderRequest
	if !bind(c, &req) {
		return
	}
	req.ID, req.UserID = c.Param("id"), currentUser(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.ReminderResponse, error) {
		return h.api.UpdateReminder(ctx, &req)
	})
}

// Analytics

// MoodAnalytics returns mood trends for a date range
// @Summary Mood analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} object{analytics=object}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/analytics/mood [get]
func (h *Handler) MoodAnalytics(c *gin.Context) {
	req := analyticsQuery(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.MoodAnalyticsResponse, error) {
		return h.api.GetMoodAnalytics(ctx, req)
	})
}

// HabitAnalytics returns completion rates and streaks
// @Summary Habit analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} object{analytics=object}
// @Router /api/v1/analytics/habits [get]
func (h *Handler) HabitAnalytics(c *gin.Context) {
	req := analyticsQuery(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.HabitAnalyticsResponse, error) {
		return h.api.GetHabitAnalytics(ctx, req)
	})
}

// MedicationAdherence returns medication adherence
// @Summary Medication adherence
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} object{analytics=object}
// @Router /api/v1/analytics/medications [get]
func (h *Handler) MedicationAdherence(c *gin.Context) {
	req := analyticsQuery(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.AdherenceResponse, error) {
		return h.api.GetMedicationAdherence(ctx, req)
	})
}

// SupplementAdherence returns supplement adherence
// @Summary Supplement adherence
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} object{analytics=object}
// @Router /api/v1/analytics/supplements [get]
func (h *Handler) SupplementAdherence(c *gin.Context) {
	req := analyticsQuery(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.AdherenceResponse, error) {
		return h.api.GetSupplementAdherence(ctx, req)
	})
}

// Overview returns every analytics view for a date range
// @Summary Dashboard overview
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD"
// @Param end query string true "YYYY-MM-DD"
// @Success 200 {object} object{overview=object}
// @Router /api/v1/analytics/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	req := analyticsQuery(c)
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.OverviewResponse, error) {
		return h.api.GetOverview(ctx, req)
	})
}

// Export dumps every record of the caller
// @Summary Export data
// @Tags export
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{snapshot=object}
// @Router /api/v1/export [get]
func (h *Handler) Export(c *gin.Context) {
	req := &wellnessgrpc.ExportRequest{UserID: currentUser(c)}
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.ExportResponse, error) {
		return h.api.ExportData(ctx, req)
	})
}

// ListNotifications returns the reminder delivery history
// @Summary Notification history
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum records (default 50)"
// @Success 200 {object} object{notifications=[]object}
// @Router /api/v1/notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	req := &wellnessgrpc.ListNotificationsRequest{UserID: currentUser(c)}
	if value := c.Query("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			badRequest(c, "limit must be an integer")
			return
		}
		req.Limit = limit
	}
	respond(h, c, http.StatusOK, func(ctx context.Context) (*wellnessgrpc.NotificationsResponse, error) {
		return h.api.ListNotifications(ctx, req)
	})
}
