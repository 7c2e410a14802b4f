package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestCancel(t *testing.T) {
	now := at(8, 0)
	ap := &models.Appointment{ID: 7, Status: string(StatusScheduled), DoctorID: "doc1"}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, now, *ap.CancelledAt)
	assert.Equal(t, "doc1", ap.DoctorID)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, CodeAlreadyCancelled))
}

func TestCancel_Completed(t *testing.T) {
	ap := &models.Appointment{ID: 7, Status: string(StatusCompleted)}

	err := Cancel(ap, at(8, 0))
	assert.True(t, httperr.IsBusiness(err, CodeInvalidState))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestReschedule(t *testing.T) {
	ap := &models.Appointment{
		ID:          3,
		PatientName: "Ana",
		DoctorID:    "doc1",
		Status:      string(StatusCompleted),
		NoShow:      true,
		StartTime:   at(9, 0),
		EndTime:     at(9, 30),
	}

	require.NoError(t, Reschedule(ap, at(11, 0), at(11, 30)))
	assert.Equal(t, at(11, 0), ap.StartTime)
	assert.Equal(t, at(11, 30), ap.EndTime)
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.False(t, ap.NoShow)
	assert.Equal(t, "Ana", ap.PatientName)
}

func TestReschedule_Cancelled(t *testing.T) {
	ap := &models.Appointment{ID: 3, Status: string(StatusCancelled), StartTime: at(9, 0)}

	err := Reschedule(ap, at(11, 0), at(11, 30))
	assert.True(t, httperr.IsBusiness(err, CodeAlreadyCancelled))
	assert.Equal(t, at(9, 0), ap.StartTime)
}

func TestComplete(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(StatusScheduled)}
	require.NoError(t, Complete(ap, at(10, 0)))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)

	assert.True(t, httperr.IsBusiness(Complete(ap, at(10, 0)), CodeInvalidState))

	cancelled := &models.Appointment{ID: 2, Status: string(StatusCancelled)}
	assert.True(t, httperr.IsBusiness(Complete(cancelled, at(10, 0)), CodeAlreadyCancelled))
}

func TestMarkNoShow_ExclusiveWithCompleted(t *testing.T) {
	ap := &models.Appointment{ID: 1, Status: string(StatusScheduled)}
	require.NoError(t, MarkNoShow(ap))
	assert.True(t, ap.NoShow)

	assert.True(t, httperr.IsBusiness(Complete(ap, time.Now()), CodeInvalidState))
	assert.True(t, httperr.IsBusiness(MarkNoShow(ap), CodeInvalidState))

	done := &models.Appointment{ID: 2, Status: string(StatusCompleted)}
	assert.True(t, httperr.IsBusiness(MarkNoShow(done), CodeInvalidState))
}
