package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	workload *ucReport.GetWorkloadReport
	trends   *ucReport.GetTrendsReport
	export   *ucReport.ExportReports // nil when object storage is not configured
}

func NewReportHandler(
	workload *ucReport.GetWorkloadReport,
	trends *ucReport.GetTrendsReport,
	export *ucReport.ExportReports,
) *ReportHandler {
	return &ReportHandler{
		workload: workload,
		trends:   trends,
		export:   export,
	}
}

func (h *ReportHandler) Workload(c *gin.Context) {
	rows, err := h.workload.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *ReportHandler) Trends(c *gin.Context) {
	rows, err := h.trends.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *ReportHandler) ExportEnabled() bool {
	return h.export != nil
}

func (h *ReportHandler) Export(c *gin.Context) {
	res, err := h.export.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, res)
}
