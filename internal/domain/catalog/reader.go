package catalog

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	CodeBranchNotFound     = "branch_not_found"
	CodeDepartmentNotFound = "department_not_found"
	CodeDoctorNotFound     = "doctor_not_found"
)

// Reader exposes the read-only reference data: branches, their departments
// and the doctors working in each department. Results are ordered by id.
type Reader interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)

	ListDepartments(ctx context.Context, branchID string) ([]models.Department, error)
	GetDepartment(ctx context.Context, id string) (*models.Department, error)

	ListDoctors(ctx context.Context, departmentID string) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
}

func BranchNotFound(id string) error {
	return httperr.ErrBusinessf(CodeBranchNotFound, "branch %q does not exist", id)
}

func DepartmentNotFound(id string) error {
	return httperr.ErrBusinessf(CodeDepartmentNotFound, "department %q does not exist", id)
}

func DoctorNotFound(id string) error {
	return httperr.ErrBusinessf(CodeDoctorNotFound, "doctor %q does not exist", id)
}

func IsNotFound(err error) bool {
	switch httperr.CodeOf(err) {
	case CodeBranchNotFound, CodeDepartmentNotFound, CodeDoctorNotFound:
		return true
	}
	return false
}
