package models

// Doctor is the storage record for a doctor.
type Doctor struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string `gorm:"column:name;size:100;not null" json:"name"`
	Specialty string `gorm:"column:specialty;size:100;not null" json:"specialty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorResponse is the transport representation of a doctor.
type DoctorResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// DoctorInput carries the fields required to create a doctor.
type DoctorInput struct {
	Name      string `json:"name" form:"name"`
	Specialty string `json:"specialty" form:"specialty"`
}

// DoctorUpdate carries a partial doctor update. A nil or empty field is left
// unchanged.
type DoctorUpdate struct {
	Name      *string `json:"name" form:"name"`
	Specialty *string `json:"specialty" form:"specialty"`
}
