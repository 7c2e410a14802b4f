package dto

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CreateAppointmentRequest struct {
	PatientName  string `json:"patient_name"`
	BranchID     string `json:"branch_id"`
	DepartmentID string `json:"department_id"`
	DoctorID     string `json:"doctor_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:mm
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type AppointmentDTO struct {
	ID           uint       `json:"id"`
	PatientName  string     `json:"patient_name"`
	BranchID     string     `json:"branch_id"`
	DepartmentID string     `json:"department_id"`
	DoctorID     string     `json:"doctor_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Status       string     `json:"status"`
	NoShow       bool       `json:"no_show"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:           ap.ID,
		PatientName:  ap.PatientName,
		BranchID:     ap.BranchID,
		DepartmentID: ap.DepartmentID,
		DoctorID:     ap.DoctorID,
		StartTime:    ap.StartTime,
		EndTime:      ap.EndTime,
		Status:       ap.Status,
		NoShow:       ap.NoShow,
		CancelledAt:  ap.CancelledAt,
		CompletedAt:  ap.CompletedAt,
		CreatedAt:    ap.CreatedAt,
	}
}

func FromAppointments(list []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, FromAppointment(&list[i]))
	}
	return out
}
