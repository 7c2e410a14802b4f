package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// DoctorDTO flattens the department membership to ids.
type DoctorDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	DepartmentIDs []string `json:"department_ids"`
}

func FromDoctors(list []models.Doctor) []DoctorDTO {
	out := make([]DoctorDTO, 0, len(list))
	for _, d := range list {
		out = append(out, DoctorDTO{ID: d.ID, Name: d.Name, DepartmentIDs: d.DepartmentIDs()})
	}
	return out
}
