package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/booking"
	ucNotification "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/notification"
	ucSchedule "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// Stores are the persistence contracts the HTTP surface runs on. The GORM
// repositories and the in-memory store both satisfy them.
type Stores struct {
	Bookings      booking.Repository
	Schedules     schedule.Repository
	Notifications notification.Repository
}

// Deps are the process-wide singletons built by main.
type Deps struct {
	Config     *config.Config
	Stores     Stores
	Dispatcher ucBooking.Dispatcher
	Clock      timezone.Clock
	Metrics    *metrics.Collector
	Logger     *zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	validators.Register()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	engine := ucBooking.NewEngine(ucBooking.Deps{
		Repo:              d.Stores.Bookings,
		Schedules:         d.Stores.Schedules,
		Emitter:           notify.NewEmitter(d.Clock),
		Dispatcher:        d.Dispatcher,
		Clock:             d.Clock,
		Metrics:           d.Metrics,
		Logger:            d.Logger,
		ConfirmMaxRetries: d.Config.ConfirmMaxRetries,
		EnforceSchedule:   d.Config.EnforceSchedule,
	})

	listSchedulesUC := ucSchedule.NewListSchedules(d.Stores.Schedules, d.Stores.Bookings)
	createScheduleUC := ucSchedule.NewCreateSchedule(d.Stores.Schedules, d.Logger)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(d.Stores.Schedules, d.Logger)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(d.Stores.Schedules, d.Logger)

	inbox := ucNotification.NewInbox(d.Stores.Notifications, d.Clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(engine)
	scheduleHandler := handlers.NewScheduleHandler(
		listSchedulesUC,
		createScheduleUC,
		updateScheduleUC,
		deleteScheduleUC,
	)
	notificationHandler := handlers.NewNotificationHandler(inbox)
	meHandler := handlers.NewMeHandler(d.Stores.Bookings)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/doctors/:id/schedules", scheduleHandler.ListForDoctor)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)
		}

		// ------------------------------
		// DOCTOR
		// ------------------------------
		doctor := secured.Group("/doctor")
		doctor.Use(middleware.RequireRole(identity.RoleDoctor))
		{
			doctor.GET("/bookings", bookingHandler.List)
			doctor.GET("/bookings/today", bookingHandler.Today)
			doctor.GET("/bookings/counts", bookingHandler.Counts)
			doctor.GET("/bookings/inspection/:number", bookingHandler.ByInspectionNumber)
			doctor.GET("/bookings/:id", bookingHandler.Get)
			doctor.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			doctor.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			doctor.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			doctor.GET("/schedules", scheduleHandler.ListMine)
			doctor.POST("/schedules", scheduleHandler.Create)
			doctor.PUT("/schedules/:id", scheduleHandler.Update)
			doctor.DELETE("/schedules/:id", scheduleHandler.Delete)
		}

		// ------------------------------
		// PATIENT
		// ------------------------------
		patient := secured.Group("/patient")
		patient.Use(middleware.RequireRole(identity.RolePatient))
		{
			patient.POST("/bookings", bookingHandler.Create)
			patient.GET("/bookings", bookingHandler.List)
			patient.GET("/bookings/:id", bookingHandler.Get)
			patient.PUT("/bookings/:id", bookingHandler.Update)
			patient.DELETE("/bookings/:id", bookingHandler.Delete)
		}
	}
}
