package services

import "fmt"

// DoctorNotFoundError reports that a patient referenced a doctor id with no
// matching row.
type DoctorNotFoundError struct {
	DoctorID uint
}

func (e *DoctorNotFoundError) Error() string {
	return fmt.Sprintf("Doctor with id %d not found", e.DoctorID)
}
