package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientName string `gorm:"size:100;not null" json:"patient_name"`

	DoctorID     string `gorm:"size:50;index;not null" json:"doctor_id"`
	BranchID     string `gorm:"size:50;not null" json:"branch_id"`
	DepartmentID string `gorm:"size:50;index;not null" json:"department_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	NoShow bool   `gorm:"default:false" json:"no_show"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
