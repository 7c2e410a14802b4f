package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var now = time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

type fakeUploader struct {
	key  string
	body []byte
	err  error
}

func (u *fakeUploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.key = key
	u.body = body
	return "s3://reports-bucket/" + key, nil
}

// newStore holds the seeded samples (doc1 scheduled, doc3 cancelled) plus a
// completed doc2 visit and a doc1 no-show.
func newStore(t *testing.T) *repository.MemoryStore {
	t.Helper()

	store := repository.NewMemoryStore(seed.Default().Expand(now, 7, 30*time.Minute), timezone.FixedClock(now))
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateAppointment(ctx, &models.Appointment{
		PatientName: "A", DoctorID: "doc2", BranchID: "branch-a", DepartmentID: "general-a",
		StartTime: start, EndTime: start.Add(30 * time.Minute), Status: "completed",
	}))
	require.NoError(t, store.CreateAppointment(ctx, &models.Appointment{
		PatientName: "B", DoctorID: "doc1", BranchID: "branch-a", DepartmentID: "general-a",
		StartTime: start, EndTime: start.Add(30 * time.Minute), Status: "scheduled", NoShow: true,
	}))
	return store
}

func TestGetWorkloadReport(t *testing.T) {
	store := newStore(t)

	rows, err := NewGetWorkloadReport(store, store).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2, "cancelled doc3 sample is not counted")

	doc1, ok := rows.Get("doc1")
	require.True(t, ok)
	assert.Equal(t, "Dr. Alice Smith", doc1.DoctorName)
	assert.Equal(t, 1, doc1.Scheduled)
	assert.Equal(t, 0, doc1.Completed)
	assert.Equal(t, 1, doc1.NoShow)

	doc2, ok := rows.Get("doc2")
	require.True(t, ok)
	assert.Equal(t, 1, doc2.Completed)

	_, ok = rows.Get("doc3")
	assert.False(t, ok)
}

func TestGetTrendsReport(t *testing.T) {
	store := newStore(t)

	rows, err := NewGetTrendsReport(store, store).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	cardio, ok := rows.Get("cardiology-a")
	require.True(t, ok)
	assert.Equal(t, "Cardiology", cardio.DepartmentName)
	assert.Equal(t, 1, cardio.Count)

	general, ok := rows.Get("general-a")
	require.True(t, ok)
	assert.Equal(t, 2, general.Count)

	_, ok = rows.Get("pediatrics-b")
	assert.False(t, ok)
}

func TestExportReports(t *testing.T) {
	store := newStore(t)
	up := &fakeUploader{}

	uc := NewExportReports(
		NewGetWorkloadReport(store, store),
		NewGetTrendsReport(store, store),
		up,
		timezone.FixedClock(now),
		zap.NewNop(),
	)

	res, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reports/20260302T070000Z.json", res.Key)
	assert.Equal(t, "s3://reports-bucket/reports/20260302T070000Z.json", res.Location)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(up.body, &snap))
	assert.True(t, snap.GeneratedAt.Equal(now))
	assert.Len(t, snap.Workload, 2)
	assert.Len(t, snap.Trends, 2)
}

func TestExportReports_UploadFails(t *testing.T) {
	store := newStore(t)

	uc := NewExportReports(
		NewGetWorkloadReport(store, store),
		NewGetTrendsReport(store, store),
		&fakeUploader{err: errors.New("bucket missing")},
		timezone.FixedClock(now),
		zap.NewNop(),
	)

	_, err := uc.Execute(context.Background())
	assert.ErrorContains(t, err, "bucket missing")
}

func TestGetWorkloadReport_CancelledDropsOut(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	ap, err := store.GetAppointment(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "doc2", ap.DoctorID)

	ap.Status = "cancelled"
	require.NoError(t, store.UpdateAppointment(ctx, ap))

	rows, err := NewGetWorkloadReport(store, store).Execute(ctx)
	require.NoError(t, err)
	_, ok := rows.Get("doc2")
	assert.False(t, ok)
}
