package services

import (
	"MedClinic/models"
	"MedClinic/utils"
)

// ToDoctorResponse maps a stored doctor to its transport shape.
func ToDoctorResponse(d *models.Doctor) *models.DoctorResponse {
	return &models.DoctorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Specialty: d.Specialty,
	}
}

// ToPatientResponse maps a stored patient to its transport shape.
func ToPatientResponse(p *models.Patient) *models.PatientResponse {
	return &models.PatientResponse{
		ID:       p.ID,
		Name:     p.Name,
		DateBorn: utils.FormatDate(p.DateOfBirth),
		DoctorID: p.DoctorID,
	}
}
