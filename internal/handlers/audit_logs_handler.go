package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// AuditLogLister is satisfied by *audit.GormSink.
type AuditLogLister interface {
	List(ctx context.Context, filter audit.LogFilter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs AuditLogLister
	loc  *time.Location
}

func NewAuditLogsHandler(logs AuditLogLister, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

// List filters by action, entity and a from/to day range (YYYY-MM-DD, both
// inclusive, clinic timezone) and pages with page/limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := audit.LogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	if from := c.Query("from"); from != "" {
		day, err := timezone.ParseDate(h.loc, from)
		if err != nil {
			badRequest(c, "from must be YYYY-MM-DD")
			return
		}
		filter.From = day
	}

	if to := c.Query("to"); to != "" {
		day, err := timezone.ParseDate(h.loc, to)
		if err != nil {
			badRequest(c, "to must be YYYY-MM-DD")
			return
		}
		_, filter.To = timezone.DayBounds(day)
	}

	logs, total, err := h.logs.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  filter.Page,
		"limit": filter.Limit,
		"total": total,
		"logs":  logs,
	})
}
