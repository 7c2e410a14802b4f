package models

import "time"

// WorkingHoursWindow is one concrete interval during which a doctor takes
// bookings. A doctor may have several disjoint windows.
type WorkingHoursWindow struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DoctorID string `gorm:"size:50;index;not null" json:"doctor_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
}
