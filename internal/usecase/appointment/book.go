package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	PatientName string

	BranchID     string
	DepartmentID string
	DoctorID     string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	catalog  catalog.Reader
	locker   lock.Locker
	audit    Auditor
	settings Settings
}

func NewBookAppointment(
	repo domain.Repository,
	catalog catalog.Reader,
	locker lock.Locker,
	audit Auditor,
	settings Settings,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		catalog:  catalog,
		locker:   locker,
		audit:    audit,
		settings: settings,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	in.PatientName = strings.TrimSpace(in.PatientName)

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"patient_name", in.PatientName},
		{"branch_id", in.BranchID},
		{"department_id", in.DepartmentID},
		{"doctor_id", in.DoctorID},
		{"date", in.Date},
		{"time", in.Time},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.ValidationError("missing required fields: %s", strings.Join(missing, ", "))
	}

	// --------------------------------------------------
	// 2. Reference data: branch -> department -> doctor
	// --------------------------------------------------
	if err := uc.resolveReferences(ctx, in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Date / time in the clinic timezone, not in the past
	// --------------------------------------------------
	start, end, err := uc.settings.parseStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Working hours + conflict, serialised per doctor
	// --------------------------------------------------
	unlock, err := uc.locker.Lock(ctx, lock.DoctorKey(in.DoctorID))
	if err != nil {
		return nil, fmt.Errorf("lock doctor %s: %w", in.DoctorID, err)
	}
	defer unlock()

	windows, existing, err := loadSchedule(ctx, uc.repo, in.DoctorID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckSlot(windows, existing, in.DoctorID, start, end, 0); err != nil {
		if httperr.IsBusiness(err, domain.CodeConflict) {
			uc.audit.Dispatch(auditConflict(in.DoctorID, start, end))
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Create
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientName:  in.PatientName,
		BranchID:     in.BranchID,
		DepartmentID: in.DepartmentID,
		DoctorID:     in.DoctorID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(appointmentEvent("appointment_created", ap, nil))

	return ap, nil
}

func (uc *BookAppointment) resolveReferences(ctx context.Context, in BookInput) error {
	if _, err := uc.catalog.GetBranch(ctx, in.BranchID); err != nil {
		return asValidation(err)
	}

	dep, err := uc.catalog.GetDepartment(ctx, in.DepartmentID)
	if err != nil {
		return asValidation(err)
	}
	if dep.BranchID != in.BranchID {
		return domain.ValidationError("department %q does not belong to branch %q", in.DepartmentID, in.BranchID)
	}

	doc, err := uc.catalog.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return asValidation(err)
	}
	if !doc.InDepartment(in.DepartmentID) {
		return domain.ValidationError("doctor %q does not work in department %q", in.DoctorID, in.DepartmentID)
	}
	return nil
}

// asValidation reports an unknown reference as a validation failure of the
// booking request; infrastructure errors pass through.
func asValidation(err error) error {
	var be httperr.BusinessError
	if catalog.IsNotFound(err) && errors.As(err, &be) {
		return domain.ValidationError("%s", be.Message)
	}
	return err
}
