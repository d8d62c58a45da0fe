package services

import (
	"MedClinic/models"
	"MedClinic/repositories"
	"context"
	"errors"
)

var (
	_ repositories.DoctorRepositoryContract  = (*MockDoctorRepository)(nil)
	_ repositories.PatientRepositoryContract = (*MockPatientRepository)(nil)
)

// MockDoctorRepository is a func-field mock of DoctorRepositoryContract.
type MockDoctorRepository struct {
	CreateFunc     func(ctx context.Context, doctor *models.Doctor) error
	GetByIDFunc    func(ctx context.Context, id uint) (*models.Doctor, error)
	FindStoredFunc func(ctx context.Context, id uint) (*models.Doctor, error)
	ExistsFunc     func(ctx context.Context, id uint) (bool, error)
	SaveFunc       func(ctx context.Context, doctor *models.Doctor) error
	DeleteFunc     func(ctx context.Context, id uint) error

	CreateCalls int
	SaveCalls   int
	DeleteCalls int
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockDoctorRepository) FindStored(ctx context.Context, id uint) (*models.Doctor, error) {
	if m.FindStoredFunc != nil {
		return m.FindStoredFunc(ctx, id)
	}
	return nil, errors.New("FindStoredFunc not implemented in mock")
}

func (m *MockDoctorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, errors.New("ExistsFunc not implemented in mock")
}

func (m *MockDoctorRepository) Save(ctx context.Context, doctor *models.Doctor) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) Delete(ctx context.Context, id uint) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPatientRepository is a func-field mock of PatientRepositoryContract.
type MockPatientRepository struct {
	CreateFunc     func(ctx context.Context, patient *models.Patient) error
	GetByIDFunc    func(ctx context.Context, id uint) (*models.Patient, error)
	FindStoredFunc func(ctx context.Context, id uint) (*models.Patient, error)
	SaveFunc       func(ctx context.Context, patient *models.Patient) error
	DeleteFunc     func(ctx context.Context, id uint) error

	CreateCalls int
	SaveCalls   int
	DeleteCalls int
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) FindStored(ctx context.Context, id uint) (*models.Patient, error) {
	if m.FindStoredFunc != nil {
		return m.FindStoredFunc(ctx, id)
	}
	return nil, errors.New("FindStoredFunc not implemented in mock")
}

func (m *MockPatientRepository) Save(ctx context.Context, patient *models.Patient) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uint) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
