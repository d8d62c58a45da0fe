package models

import (
	"time"
)

// Patient is the storage record for a patient. Every patient belongs to
// exactly one doctor.
type Patient struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;type:date;not null" json:"date_of_birth"`
	DoctorID    uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Doctor      *Doctor   `gorm:"foreignKey:DoctorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientResponse is the transport representation of a patient. The birth
// date is exposed as date_born.
type PatientResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	DateBorn string `json:"date_born"`
	DoctorID uint   `json:"doctor_id"`
}

// PatientInput carries the fields required to create a patient.
type PatientInput struct {
	Name        string `json:"name" form:"name"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	DoctorID    uint   `json:"doctor_id" form:"doctor_id"`
}

// PatientUpdate carries a partial patient update. A nil or zero field is left
// unchanged.
type PatientUpdate struct {
	Name        *string `json:"name" form:"name"`
	DateOfBirth *string `json:"date_of_birth" form:"date_of_birth"`
	DoctorID    *uint   `json:"doctor_id" form:"doctor_id"`
}

// MessageResponse is returned by endpoints that have no entity to show.
type MessageResponse struct {
	Message string `json:"message"`
}
