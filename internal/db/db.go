package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// noOverlapSQL installs the per-doctor exclusion constraint backing the
// application-level conflict check. Cancelled rows are ignored, touching
// intervals are allowed.
const noOverlapSQL = `
DO $$
BEGIN
	CREATE EXTENSION IF NOT EXISTS btree_gist;

	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_doctor_no_overlap'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_doctor_no_overlap
			EXCLUDE USING gist (
				doctor_id WITH =,
				tstzrange(start_time, end_time, '[)') WITH &&
			)
			WHERE (status <> 'cancelled');
	END IF;
END
$$;
`

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if !cfg.IsProduction() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Branch{},
		&models.Department{},
		&models.Doctor{},
		&models.WorkingHoursWindow{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Managed databases may refuse the extension; the lock still serialises
	// bookings, the constraint only backs it up.
	if err := db.Exec(noOverlapSQL).Error; err != nil {
		log.Warn("appointment overlap constraint not installed", zap.Error(err))
	}

	return db, nil
}
