package seed

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// Default is the demo dataset: three branches, five doctors.
func Default() *Dataset {
	ds := &Dataset{
		Branches: []models.Branch{
			{ID: "branch-a", Name: "Branch A"},
			{ID: "branch-b", Name: "Branch B"},
			{ID: "branch-c", Name: "Branch C"},
		},
		Departments: []models.Department{
			{ID: "cardiology-a", Name: "Cardiology", BranchID: "branch-a"},
			{ID: "general-a", Name: "General Practice", BranchID: "branch-a"},
			{ID: "general-b", Name: "General Practice", BranchID: "branch-b"},
			{ID: "pediatrics-b", Name: "Pediatrics", BranchID: "branch-b"},
			{ID: "general-c", Name: "General Practice", BranchID: "branch-c"},
		},
		Doctors: []Doctor{
			{ID: "doc1", Name: "Dr. Alice Smith", Departments: []string{"general-a", "cardiology-a"}},
			{ID: "doc2", Name: "Dr. Bob Johnson", Departments: []string{"general-a"}},
			{ID: "doc3", Name: "Dr. Carol White", Departments: []string{"general-b", "pediatrics-b"}},
			{ID: "doc4", Name: "Dr. David Martin", Departments: []string{"pediatrics-b"}},
			{ID: "doc5", Name: "Dr. Emily Davis", Departments: []string{"general-c"}},
		},
		Appointments: []SampleAppointment{
			{
				ID: 1, PatientName: "John Doe",
				BranchID: "branch-a", DepartmentID: "cardiology-a", DoctorID: "doc1",
				Weekday: 1, Time: "10:00", Status: "scheduled",
			},
			{
				ID: 2, PatientName: "Mary Major",
				BranchID: "branch-b", DepartmentID: "pediatrics-b", DoctorID: "doc3",
				Weekday: 2, Time: "11:00", Status: "cancelled",
			},
		},
	}

	for wd := 1; wd <= 5; wd++ {
		for _, id := range []string{"doc1", "doc2", "doc3", "doc4"} {
			ds.WeeklyHours = append(ds.WeeklyHours, WeeklyHours{DoctorID: id, Weekday: wd, Start: "09:00", End: "17:00"})
		}
		ds.WeeklyHours = append(ds.WeeklyHours,
			WeeklyHours{DoctorID: "doc5", Weekday: wd, Start: "08:00", End: "12:00"},
			WeeklyHours{DoctorID: "doc5", Weekday: wd, Start: "14:00", End: "18:00"},
		)
	}
	ds.WeeklyHours = append(ds.WeeklyHours, WeeklyHours{DoctorID: "doc2", Weekday: 6, Start: "09:00", End: "13:00"})

	return ds
}
