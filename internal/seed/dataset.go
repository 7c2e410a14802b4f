// Package seed holds the mock reference data the service boots with and turns
// its weekly working template into concrete working-hours windows.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Doctor struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Departments []string `yaml:"departments"`
}

// WeeklyHours is one recurring window. Weekday follows time.Weekday (0 = Sunday).
type WeeklyHours struct {
	DoctorID string `yaml:"doctor_id"`
	Weekday  int    `yaml:"weekday"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
}

// SampleAppointment is placed on the first matching weekday after the seed date.
type SampleAppointment struct {
	ID           uint   `yaml:"id"`
	PatientName  string `yaml:"patient_name"`
	BranchID     string `yaml:"branch_id"`
	DepartmentID string `yaml:"department_id"`
	DoctorID     string `yaml:"doctor_id"`
	Weekday      int    `yaml:"weekday"`
	Time         string `yaml:"time"`
	Status       string `yaml:"status"`
	NoShow       bool   `yaml:"no_show"`
}

type Dataset struct {
	Branches     []models.Branch     `yaml:"branches"`
	Departments  []models.Department `yaml:"departments"`
	Doctors      []Doctor            `yaml:"doctors"`
	WeeklyHours  []WeeklyHours       `yaml:"weekly_hours"`
	Appointments []SampleAppointment `yaml:"appointments"`
}

func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return &ds, nil
}

// Validate checks referential integrity and that every weekly window has start < end.
func (ds *Dataset) Validate() error {
	branches := make(map[string]bool, len(ds.Branches))
	for _, b := range ds.Branches {
		if b.ID == "" {
			return fmt.Errorf("branch %q has no id", b.Name)
		}
		branches[b.ID] = true
	}

	departments := make(map[string]string, len(ds.Departments))
	for _, d := range ds.Departments {
		if !branches[d.BranchID] {
			return fmt.Errorf("department %s references unknown branch %q", d.ID, d.BranchID)
		}
		departments[d.ID] = d.BranchID
	}

	doctors := make(map[string]map[string]bool, len(ds.Doctors))
	for _, doc := range ds.Doctors {
		if len(doc.Departments) == 0 {
			return fmt.Errorf("doctor %s belongs to no department", doc.ID)
		}
		member := make(map[string]bool, len(doc.Departments))
		for _, depID := range doc.Departments {
			if _, ok := departments[depID]; !ok {
				return fmt.Errorf("doctor %s references unknown department %q", doc.ID, depID)
			}
			member[depID] = true
		}
		doctors[doc.ID] = member
	}

	for _, wh := range ds.WeeklyHours {
		if _, ok := doctors[wh.DoctorID]; !ok {
			return fmt.Errorf("weekly hours reference unknown doctor %q", wh.DoctorID)
		}
		if wh.Weekday < 0 || wh.Weekday > 6 {
			return fmt.Errorf("doctor %s: weekday %d out of range", wh.DoctorID, wh.Weekday)
		}
		start, err := parseClock(wh.Start)
		if err != nil {
			return fmt.Errorf("doctor %s: %w", wh.DoctorID, err)
		}
		end, err := parseClock(wh.End)
		if err != nil {
			return fmt.Errorf("doctor %s: %w", wh.DoctorID, err)
		}
		if !start.Before(end) {
			return fmt.Errorf("doctor %s: window %s-%s must start before it ends", wh.DoctorID, wh.Start, wh.End)
		}
	}

	seen := make(map[uint]bool, len(ds.Appointments))
	for _, ap := range ds.Appointments {
		if ap.ID == 0 || seen[ap.ID] {
			return fmt.Errorf("sample appointment id %d is zero or duplicated", ap.ID)
		}
		seen[ap.ID] = true
		if departments[ap.DepartmentID] != ap.BranchID {
			return fmt.Errorf("sample appointment %d: department %q is not in branch %q", ap.ID, ap.DepartmentID, ap.BranchID)
		}
		if !doctors[ap.DoctorID][ap.DepartmentID] {
			return fmt.Errorf("sample appointment %d: doctor %q is not in department %q", ap.ID, ap.DoctorID, ap.DepartmentID)
		}
		if _, err := parseClock(ap.Time); err != nil {
			return fmt.Errorf("sample appointment %d: %w", ap.ID, err)
		}
	}
	return nil
}

func parseClock(hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q", hm)
	}
	return t, nil
}
