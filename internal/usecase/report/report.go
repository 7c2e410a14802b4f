package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/export"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// WORKLOAD
// ======================================================

type GetWorkloadReport struct {
	repo    domain.Repository
	catalog catalog.Reader
}

func NewGetWorkloadReport(repo domain.Repository, catalog catalog.Reader) *GetWorkloadReport {
	return &GetWorkloadReport{repo: repo, catalog: catalog}
}

func (uc *GetWorkloadReport) Execute(ctx context.Context) (report.Workload, error) {
	list, err := uc.repo.ListAppointments(ctx, domain.ListFilter{})
	if err != nil {
		return nil, err
	}

	rows := report.WorkloadByDoctor(list)
	for i := range rows {
		doc, err := uc.catalog.GetDoctor(ctx, rows[i].DoctorID)
		if err != nil {
			if catalog.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		rows[i].DoctorName = doc.Name
	}
	return rows, nil
}

// ======================================================
// TRENDS
// ======================================================

type GetTrendsReport struct {
	repo    domain.Repository
	catalog catalog.Reader
}

func NewGetTrendsReport(repo domain.Repository, catalog catalog.Reader) *GetTrendsReport {
	return &GetTrendsReport{repo: repo, catalog: catalog}
}

func (uc *GetTrendsReport) Execute(ctx context.Context) (report.Trends, error) {
	list, err := uc.repo.ListAppointments(ctx, domain.ListFilter{})
	if err != nil {
		return nil, err
	}

	rows := report.TrendsByDepartment(list)
	for i := range rows {
		dep, err := uc.catalog.GetDepartment(ctx, rows[i].DepartmentID)
		if err != nil {
			if catalog.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		rows[i].DepartmentName = dep.Name
	}
	return rows, nil
}

// ======================================================
// EXPORT
// ======================================================

type Snapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Workload    report.Workload `json:"workload"`
	Trends      report.Trends   `json:"trends"`
}

type ExportResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
}

// ExportReports writes both reports as one JSON document to object storage.
type ExportReports struct {
	workload *GetWorkloadReport
	trends   *GetTrendsReport
	uploader export.Uploader
	clock    timezone.Clock
	log      *zap.Logger
}

func NewExportReports(
	workload *GetWorkloadReport,
	trends *GetTrendsReport,
	uploader export.Uploader,
	clock timezone.Clock,
	log *zap.Logger,
) *ExportReports {
	return &ExportReports{
		workload: workload,
		trends:   trends,
		uploader: uploader,
		clock:    clock,
		log:      log,
	}
}

func (uc *ExportReports) Execute(ctx context.Context) (*ExportResult, error) {
	workload, err := uc.workload.Execute(ctx)
	if err != nil {
		return nil, err
	}
	trends, err := uc.trends.Execute(ctx)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{
		GeneratedAt: uc.clock(),
		Workload:    nonNil(workload),
		Trends:      nonNil(trends),
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode report snapshot: %w", err)
	}

	key := "reports/" + snap.GeneratedAt.UTC().Format("20060102T150405Z") + ".json"
	location, err := uc.uploader.Upload(ctx, key, "application/json", body)
	if err != nil {
		return nil, fmt.Errorf("upload report snapshot: %w", err)
	}

	uc.log.Info("report snapshot exported",
		zap.String("location", location),
		zap.Int("doctors", len(workload)),
		zap.Int("departments", len(trends)),
	)

	return &ExportResult{Key: key, Location: location}, nil
}

func nonNil[S ~[]E, E any](rows S) S {
	if rows == nil {
		return S{}
	}
	return rows
}
