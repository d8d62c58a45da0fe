package repositories

import (
	"MedClinic/models"
	"context"
	"errors"
)

// ErrNotFound is returned by Save and Delete when no stored row matched.
var ErrNotFound = errors.New("record not found")

// DoctorRepositoryContract is the storage contract the services depend on.
// GetByID and FindStored return (nil, nil) when no row matches. GetByID may
// answer from the cache, FindStored always reads the table.
type DoctorRepositoryContract interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	FindStored(ctx context.Context, id uint) (*models.Doctor, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id uint) error
}

// PatientRepositoryContract is the storage contract the services depend on.
// GetByID and FindStored behave as on DoctorRepositoryContract.
type PatientRepositoryContract interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	FindStored(ctx context.Context, id uint) (*models.Patient, error)
	Save(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id uint) error
}

var (
	_ DoctorRepositoryContract  = (*DoctorRepository)(nil)
	_ PatientRepositoryContract = (*PatientRepository)(nil)
)
