package models

type Doctor struct {
	ID   string `gorm:"primaryKey;size:50" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Departments []Department `gorm:"many2many:doctor_departments;" json:"departments"`
}

// InDepartment reports explicit membership; there is no implicit rule.
func (d *Doctor) InDepartment(departmentID string) bool {
	for _, dep := range d.Departments {
		if dep.ID == departmentID {
			return true
		}
	}
	return false
}

func (d *Doctor) DepartmentIDs() []string {
	ids := make([]string, 0, len(d.Departments))
	for _, dep := range d.Departments {
		ids = append(ids, dep.ID)
	}
	return ids
}
