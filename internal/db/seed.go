package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
)

type doctorDepartment struct {
	DoctorID     string `gorm:"primaryKey"`
	DepartmentID string `gorm:"primaryKey"`
}

func (doctorDepartment) TableName() string {
	return "doctor_departments"
}

// Seed loads reference data and sample appointments without touching rows
// that already exist. Working-hours windows are regenerated from the
// snapshot because they are derived from the weekly template and the boot
// date. Afterwards the appointment id sequence continues above the highest
// stored id.
func Seed(ctx context.Context, db *gorm.DB, snap seed.Snapshot, log *zap.Logger) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ignore := clause.OnConflict{DoNothing: true}

		if len(snap.Branches) > 0 {
			if err := tx.Clauses(ignore).Create(&snap.Branches).Error; err != nil {
				return fmt.Errorf("seed branches: %w", err)
			}
		}
		if len(snap.Departments) > 0 {
			if err := tx.Clauses(ignore).Create(&snap.Departments).Error; err != nil {
				return fmt.Errorf("seed departments: %w", err)
			}
		}

		var links []doctorDepartment
		for _, d := range snap.Doctors {
			doc := models.Doctor{ID: d.ID, Name: d.Name}
			if err := tx.Clauses(ignore).Omit(clause.Associations).Create(&doc).Error; err != nil {
				return fmt.Errorf("seed doctor %s: %w", d.ID, err)
			}
			for _, dep := range d.Departments {
				links = append(links, doctorDepartment{DoctorID: d.ID, DepartmentID: dep.ID})
			}
		}
		if len(links) > 0 {
			if err := tx.Clauses(ignore).Create(&links).Error; err != nil {
				return fmt.Errorf("seed doctor departments: %w", err)
			}
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.WorkingHoursWindow{}).Error; err != nil {
			return fmt.Errorf("clear working hours: %w", err)
		}
		if len(snap.Windows) > 0 {
			if err := tx.Create(&snap.Windows).Error; err != nil {
				return fmt.Errorf("seed working hours: %w", err)
			}
		}

		if len(snap.Appointments) > 0 {
			if err := tx.Clauses(ignore).Create(&snap.Appointments).Error; err != nil {
				return fmt.Errorf("seed appointments: %w", err)
			}
		}

		return tx.Exec(`
			SELECT setval(
				pg_get_serial_sequence('appointments', 'id'),
				COALESCE(MAX(id), 1),
				MAX(id) IS NOT NULL
			) FROM appointments
		`).Error
	})
	if err != nil {
		return err
	}

	log.Info("database seeded",
		zap.Int("branches", len(snap.Branches)),
		zap.Int("doctors", len(snap.Doctors)),
		zap.Int("windows", len(snap.Windows)),
		zap.Int("sample_appointments", len(snap.Appointments)),
	)
	return nil
}
