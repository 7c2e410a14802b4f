package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListBranches struct {
	reader catalog.Reader
}

func NewListBranches(reader catalog.Reader) *ListBranches {
	return &ListBranches{reader: reader}
}

func (uc *ListBranches) Execute(ctx context.Context) ([]models.Branch, error) {
	return uc.reader.ListBranches(ctx)
}

// ListDepartments returns the departments of one branch. An unknown branch
// is reported as branch_not_found rather than an empty list.
type ListDepartments struct {
	reader catalog.Reader
}

func NewListDepartments(reader catalog.Reader) *ListDepartments {
	return &ListDepartments{reader: reader}
}

func (uc *ListDepartments) Execute(ctx context.Context, branchID string) ([]models.Department, error) {
	return uc.reader.ListDepartments(ctx, strings.TrimSpace(branchID))
}

type ListDoctors struct {
	reader catalog.Reader
}

func NewListDoctors(reader catalog.Reader) *ListDoctors {
	return &ListDoctors{reader: reader}
}

func (uc *ListDoctors) Execute(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	return uc.reader.ListDoctors(ctx, strings.TrimSpace(departmentID))
}
