package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var monday = time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

func newStore() *MemoryStore {
	snap := seed.Default().Expand(monday, 7, 30*time.Minute)
	return NewMemoryStore(snap, timezone.FixedClock(monday))
}

func TestMemoryStore_Catalog(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	branches, err := s.ListBranches(ctx)
	require.NoError(t, err)
	require.Len(t, branches, 3)
	assert.Equal(t, "branch-a", branches[0].ID)

	deps, err := s.ListDepartments(ctx, "branch-b")
	require.NoError(t, err)
	assert.Equal(t, []string{"general-b", "pediatrics-b"}, []string{deps[0].ID, deps[1].ID})

	docs, err := s.ListDoctors(ctx, "general-a")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc1", docs[0].ID)
	assert.Equal(t, "doc2", docs[1].ID)

	_, err = s.ListDepartments(ctx, "branch-z")
	assert.True(t, httperr.IsBusiness(err, catalog.CodeBranchNotFound))

	_, err = s.ListDoctors(ctx, "oncology")
	assert.True(t, httperr.IsBusiness(err, catalog.CodeDepartmentNotFound))

	_, err = s.GetDoctor(ctx, "doc9")
	assert.True(t, catalog.IsNotFound(err))
}

func TestMemoryStore_IDsStartAboveSeed(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	ap := &models.Appointment{DoctorID: "doc2", Status: string(domain.StatusScheduled)}
	require.NoError(t, s.CreateAppointment(ctx, ap))
	assert.Equal(t, uint(3), ap.ID)
	assert.Equal(t, monday, ap.CreatedAt)

	next := &models.Appointment{DoctorID: "doc2", Status: string(domain.StatusScheduled)}
	require.NoError(t, s.CreateAppointment(ctx, next))
	assert.Equal(t, uint(4), next.ID)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	got, err := s.GetAppointment(ctx, 1)
	require.NoError(t, err)
	got.Status = string(domain.StatusCancelled)

	again, err := s.GetAppointment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), again.Status)

	doc, err := s.GetDoctor(ctx, "doc1")
	require.NoError(t, err)
	doc.Departments[0].ID = "mutated"

	doc, err = s.GetDoctor(ctx, "doc1")
	require.NoError(t, err)
	assert.True(t, doc.InDepartment("general-a"))
}

func TestMemoryStore_UpdateAndList(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	_, err := s.GetAppointment(ctx, 99)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFound))
	assert.True(t, httperr.IsBusiness(s.UpdateAppointment(ctx, &models.Appointment{ID: 99}), domain.CodeNotFound))

	ap, err := s.GetAppointment(ctx, 1)
	require.NoError(t, err)
	ap.PatientName = "Johnny Doe"
	require.NoError(t, s.UpdateAppointment(ctx, ap))

	all, err := s.ListAppointments(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Johnny Doe", all[0].PatientName)

	doc1, err := s.ListDoctorAppointments(ctx, "doc1")
	require.NoError(t, err)
	assert.Len(t, doc1, 1)

	start, end := timezone.DayBounds(all[0].StartTime)
	day, err := s.ListAppointments(ctx, domain.ListFilter{From: start, To: end})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, uint(1), day[0].ID)
}

func TestMemoryStore_WorkingHours(t *testing.T) {
	s := newStore()

	windows, err := s.ListWorkingHours(context.Background(), "doc5")
	require.NoError(t, err)
	assert.Len(t, windows, 10)

	none, err := s.ListWorkingHours(context.Background(), "doc9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_ReplaceWorkingHours(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	later := monday.AddDate(0, 0, 21)
	require.NoError(t, s.ReplaceWorkingHours(ctx, seed.Default().Windows(later, 7)))

	windows, err := s.ListWorkingHours(ctx, "doc1")
	require.NoError(t, err)
	require.Len(t, windows, 5)
	assert.Equal(t, time.Date(2026, 3, 23, 9, 0, 0, 0, time.UTC), windows[0].StartTime)

	for _, w := range windows {
		assert.False(t, w.StartTime.Before(later.Truncate(24*time.Hour)), "old horizon is gone")
	}
}
