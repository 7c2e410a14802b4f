package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *AppointmentGormRepository) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.BranchNotFound(id)
		}
		return nil, err
	}
	return &branch, nil
}

func (r *AppointmentGormRepository) ListDepartments(ctx context.Context, branchID string) ([]models.Department, error) {
	if _, err := r.GetBranch(ctx, branchID); err != nil {
		return nil, err
	}

	var deps []models.Department
	if err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("id ASC").
		Find(&deps).Error; err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *AppointmentGormRepository) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	var dep models.Department
	if err := r.db.WithContext(ctx).First(&dep, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.DepartmentNotFound(id)
		}
		return nil, err
	}
	return &dep, nil
}

func (r *AppointmentGormRepository) ListDoctors(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	if _, err := r.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}

	var docs []models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("Departments").
		Joins("JOIN doctor_departments dd ON dd.doctor_id = doctors.id").
		Where("dd.department_id = ?", departmentID).
		Order("doctors.id ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *AppointmentGormRepository) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("Departments").
		First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.DoctorNotFound(id)
		}
		return nil, err
	}
	return &doc, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListWorkingHours(
	ctx context.Context,
	doctorID string,
) ([]models.WorkingHoursWindow, error) {

	var windows []models.WorkingHoursWindow
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// ReplaceWorkingHours swaps every window in one transaction, so readers see
// either the old horizon or the new one.
func (r *AppointmentGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	windows []models.WorkingHoursWindow,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.WorkingHoursWindow{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.CreateInBatches(windows, 200).Error
	})
}

func (r *AppointmentGormRepository) ListDoctorAppointments(
	ctx context.Context,
	doctorID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND status <> ?", doctorID, string(domain.StatusCancelled)).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ConflictError(ap.DoctorID, ap.StartTime, ap.EndTime)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(id)
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ConflictError(ap.DoctorID, ap.StartTime, ap.EndTime)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.DoctorID != "" {
		q = q.Where("doctor_id = ?", filter.DoctorID)
	}
	if !filter.From.IsZero() {
		q = q.Where("start_time >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("start_time < ?", filter.To)
	}

	var apps []models.Appointment
	if err := q.Order("id ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var (
	_ domain.Repository = (*AppointmentGormRepository)(nil)
	_ catalog.Reader    = (*AppointmentGormRepository)(nil)
	_ seed.WindowWriter = (*AppointmentGormRepository)(nil)
)
