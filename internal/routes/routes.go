package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/export"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/catalog"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

// Store is the appointment repository together with the reference data it
// is checked against. Both the in-memory and the gorm store implement it.
type Store interface {
	domain.Repository
	catalog.Reader
}

type Deps struct {
	Store    Store
	Locker   lock.Locker
	Audit    ucAppointment.Auditor
	Settings ucAppointment.Settings
	Log      *zap.Logger

	// Optional.
	Uploader           export.Uploader         // enables POST /api/reports/export
	AuditLogs          handlers.AuditLogLister // enables GET /api/audit-logs
	RateLimitPerMinute int                     // 0 disables write throttling
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(deps.Log),
		middleware.CORSMiddleware(),
	)

	writeLimit := middleware.NewRateLimiter(deps.RateLimitPerMinute, deps.Log).Middleware()

	store := deps.Store
	settings := deps.Settings

	// ======================================================
	// USE CASES - CATALOG
	// ======================================================
	listBranchesUC := ucCatalog.NewListBranches(store)
	listDepartmentsUC := ucCatalog.NewListDepartments(store)
	listDoctorsUC := ucCatalog.NewListDoctors(store)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(store, store, deps.Locker, deps.Audit, settings)
	cancelUC := ucAppointment.NewCancelAppointment(store, deps.Locker, deps.Audit, settings)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(store, deps.Locker, deps.Audit, settings)
	completeUC := ucAppointment.NewCompleteAppointment(store, deps.Locker, deps.Audit, settings)
	noShowUC := ucAppointment.NewMarkNoShow(store, deps.Locker, deps.Audit)
	getUC := ucAppointment.NewGetAppointment(store)
	listUC := ucAppointment.NewListAppointments(store, store, settings)

	checkUC := ucAppointment.NewCheckAvailability(store, store, settings)
	slotsUC := ucAppointment.NewListFreeSlots(store, store, settings)

	// ======================================================
	// USE CASES - REPORTS
	// ======================================================
	workloadUC := ucReport.NewGetWorkloadReport(store, store)
	trendsUC := ucReport.NewGetTrendsReport(store, store)

	var exportUC *ucReport.ExportReports
	if deps.Uploader != nil {
		exportUC = ucReport.NewExportReports(workloadUC, trendsUC, deps.Uploader, settings.Clock, deps.Log)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(listBranchesUC, listDepartmentsUC, listDoctorsUC)
	doctorHandler := handlers.NewDoctorHandler(checkUC, slotsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		rescheduleUC,
		completeUC,
		noShowUC,
		getUC,
		listUC,
	)
	reportHandler := handlers.NewReportHandler(workloadUC, trendsUC, exportUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// REFERENCE DATA
		// ------------------------------
		api.GET("/branches", catalogHandler.ListBranches)
		api.GET("/branches/:id/departments", catalogHandler.ListDepartments)
		api.GET("/departments/:id/doctors", catalogHandler.ListDoctors)

		api.GET("/doctors/:id/slots", doctorHandler.Slots)
		api.GET("/doctors/:id/availability", doctorHandler.Availability)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", writeLimit, appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id/cancel", writeLimit, appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/reschedule", writeLimit, appointmentHandler.Reschedule)
		api.PATCH("/appointments/:id/complete", writeLimit, appointmentHandler.Complete)
		api.PATCH("/appointments/:id/no-show", writeLimit, appointmentHandler.NoShow)

		// ------------------------------
		// REPORTS
		// ------------------------------
		api.GET("/reports/workload", reportHandler.Workload)
		api.GET("/reports/trends", reportHandler.Trends)
		if reportHandler.ExportEnabled() {
			api.POST("/reports/export", writeLimit, reportHandler.Export)
		}

		if deps.AuditLogs != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs, settings.Location)
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
