package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// MemoryStore keeps the whole dataset in process memory. Values are copied on
// the way in and out so callers never alias stored records.
type MemoryStore struct {
	mu    sync.RWMutex
	clock timezone.Clock

	branches     map[string]models.Branch
	departments  map[string]models.Department
	doctors      map[string]models.Doctor
	windows      map[string][]models.WorkingHoursWindow
	appointments map[uint]models.Appointment

	nextID uint
}

func NewMemoryStore(snap seed.Snapshot, clock timezone.Clock) *MemoryStore {
	s := &MemoryStore{
		clock:        clock,
		branches:     make(map[string]models.Branch, len(snap.Branches)),
		departments:  make(map[string]models.Department, len(snap.Departments)),
		doctors:      make(map[string]models.Doctor, len(snap.Doctors)),
		appointments: make(map[uint]models.Appointment, len(snap.Appointments)),
		nextID:       1,
	}

	for _, b := range snap.Branches {
		s.branches[b.ID] = b
	}
	for _, d := range snap.Departments {
		s.departments[d.ID] = d
	}
	for _, d := range snap.Doctors {
		s.doctors[d.ID] = d
	}
	_ = s.ReplaceWorkingHours(context.Background(), snap.Windows)
	for _, ap := range snap.Appointments {
		s.appointments[ap.ID] = ap
		if ap.ID >= s.nextID {
			s.nextID = ap.ID + 1
		}
	}

	return s
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *MemoryStore) ListBranches(ctx context.Context) ([]models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Branch, 0, len(s.branches))
	for _, b := range s.branches {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.branches[id]
	if !ok {
		return nil, catalog.BranchNotFound(id)
	}
	return &b, nil
}

func (s *MemoryStore) ListDepartments(ctx context.Context, branchID string) ([]models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.branches[branchID]; !ok {
		return nil, catalog.BranchNotFound(branchID)
	}

	out := []models.Department{}
	for _, d := range s.departments {
		if d.BranchID == branchID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.departments[id]
	if !ok {
		return nil, catalog.DepartmentNotFound(id)
	}
	return &d, nil
}

func (s *MemoryStore) ListDoctors(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.departments[departmentID]; !ok {
		return nil, catalog.DepartmentNotFound(departmentID)
	}

	out := []models.Doctor{}
	for _, d := range s.doctors {
		if d.InDepartment(departmentID) {
			out = append(out, copyDoctor(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return nil, catalog.DoctorNotFound(id)
	}
	d = copyDoctor(d)
	return &d, nil
}

func copyDoctor(d models.Doctor) models.Doctor {
	d.Departments = append([]models.Department(nil), d.Departments...)
	return d
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (s *MemoryStore) ListWorkingHours(ctx context.Context, doctorID string) ([]models.WorkingHoursWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.WorkingHoursWindow(nil), s.windows[doctorID]...), nil
}

// ReplaceWorkingHours swaps in a freshly expanded set of windows.
func (s *MemoryStore) ReplaceWorkingHours(ctx context.Context, windows []models.WorkingHoursWindow) error {
	byDoctor := make(map[string][]models.WorkingHoursWindow)
	for i, w := range windows {
		w.ID = uint(i + 1)
		byDoctor[w.DoctorID] = append(byDoctor[w.DoctorID], w)
	}

	s.mu.Lock()
	s.windows = byDoctor
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListDoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.ListAppointments(ctx, domain.ListFilter{DoctorID: doctorID})
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment assigns the next id. Ids are never reused, including
// after cancellation.
func (s *MemoryStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	ap.ID = s.nextID
	ap.CreatedAt = now
	ap.UpdatedAt = now
	s.nextID++

	s.appointments[ap.ID] = *ap
	return nil
}

func (s *MemoryStore) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.NotFoundError(id)
	}
	return &ap, nil
}

func (s *MemoryStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return domain.NotFoundError(ap.ID)
	}

	ap.UpdatedAt = s.clock()
	s.appointments[ap.ID] = *ap
	return nil
}

// ListAppointments returns matches in creation (id) order.
func (s *MemoryStore) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if filter.DoctorID != "" && ap.DoctorID != filter.DoctorID {
			continue
		}
		if !filter.From.IsZero() && ap.StartTime.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !ap.StartTime.Before(filter.To) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var (
	_ domain.Repository = (*MemoryStore)(nil)
	_ catalog.Reader    = (*MemoryStore)(nil)
	_ seed.WindowWriter = (*MemoryStore)(nil)
)
