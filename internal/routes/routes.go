package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/audit"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/config"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/handlers"
	infraRepo "github.com/roncastellon/BWM-walker-app-sub003/internal/infra/repository"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/middleware"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/session"
	ucSchedule "github.com/roncastellon/BWM-walker-app-sub003/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sessionStore := session.NewStore(rdb)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	createAppointmentUC := ucSchedule.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucSchedule.NewUpdateAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	transitionAppointmentUC := ucSchedule.NewTransitionAppointment(
		scheduleRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	calendarQueryUC := ucSchedule.NewCalendarQuery(scheduleRepo)

	batchBuilderUC := ucSchedule.NewBatchBuilder(
		scheduleRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	petHandler := handlers.NewPetHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		transitionAppointmentUC,
		scheduleRepo,
	)

	calendarHandler := handlers.NewCalendarHandler(calendarQueryUC)

	batchHandler := handlers.NewBatchHandler(
		batchBuilderUC,
		sessionStore,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// REFERENCE DATA
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id/pets", clientHandler.ListPets)
			secured.POST("/pets", petHandler.Create)

			secured.GET("/staff", staffHandler.List)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.POST("/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.POST("/appointments/:id/force-complete", appointmentHandler.ForceComplete)
			secured.POST("/appointments/:id/end-early", appointmentHandler.EndStayEarly)
			secured.PUT("/appointments/:id/report", appointmentHandler.RecordReport)

			// ------------------------------
			// CALENDAR
			// ------------------------------
			secured.GET("/calendar/day", calendarHandler.Day)
			secured.GET("/calendar/week", calendarHandler.Week)
			secured.GET("/calendar/month", calendarHandler.Month)
			secured.GET("/timeslots", calendarHandler.TimeSlots)

			// ------------------------------
			// BATCH DAILY SCHEDULE
			// ------------------------------
			secured.POST("/batch", batchHandler.Start)
			secured.GET("/batch", batchHandler.Get)
			secured.POST("/batch/drafts", batchHandler.AddDraft)
			secured.DELETE("/batch/drafts/:draftID", batchHandler.RemoveDraft)
			secured.POST("/batch/commit", batchHandler.Commit)
			secured.DELETE("/batch", batchHandler.Cancel)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
