package services

import (
	"MedClinic/models"
	"MedClinic/repositories"
	"MedClinic/utils"
	"context"
	"errors"
	"fmt"
)

type PatientService struct {
	repository repositories.PatientRepositoryContract
	doctors    repositories.DoctorRepositoryContract
}

func NewPatientService(repository repositories.PatientRepositoryContract, doctors repositories.DoctorRepositoryContract) *PatientService {
	return &PatientService{repository: repository, doctors: doctors}
}

// Create inserts a patient bound to an existing doctor. A missing doctor
// yields *DoctorNotFoundError and nothing is written.
func (s *PatientService) Create(ctx context.Context, input models.PatientInput) (*models.PatientResponse, error) {
	if err := utils.ValidatePatientInput(input.Name, input.DateOfBirth, input.DoctorID); err != nil {
		return nil, err
	}
	dob, err := utils.ParseDate(input.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date of birth: %w", err)
	}

	if err := s.requireDoctor(ctx, input.DoctorID); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		Name:        input.Name,
		DateOfBirth: dob,
		DoctorID:    input.DoctorID,
	}
	if err := s.repository.Create(ctx, patient); err != nil {
		return nil, err
	}
	return ToPatientResponse(patient), nil
}

// GetByID returns (nil, nil) when the patient does not exist.
func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.PatientResponse, error) {
	patient, err := s.repository.GetByID(ctx, id)
	if err != nil || patient == nil {
		return nil, err
	}
	return ToPatientResponse(patient), nil
}

// Update merges every supplied field into the stored patient. Empty strings
// and a zero doctor id count as not supplied. A new doctor id is checked
// before anything is saved; if that doctor is missing the stored patient is
// left as it was.
func (s *PatientService) Update(ctx context.Context, id uint, update models.PatientUpdate) (*models.PatientResponse, error) {
	if err := utils.ValidatePatientUpdate(update.Name, update.DateOfBirth); err != nil {
		return nil, err
	}

	patient, err := s.repository.FindStored(ctx, id)
	if err != nil || patient == nil {
		return nil, err
	}

	merged := *patient
	if utils.Supplied(update.Name) {
		merged.Name = *update.Name
	}
	if utils.Supplied(update.DateOfBirth) {
		dob, err := utils.ParseDate(*update.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		merged.DateOfBirth = dob
	}
	if utils.SuppliedID(update.DoctorID) {
		if err := s.requireDoctor(ctx, *update.DoctorID); err != nil {
			return nil, err
		}
		merged.DoctorID = *update.DoctorID
	}

	if err := s.repository.Save(ctx, &merged); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToPatientResponse(&merged), nil
}

// Delete reports false when there was no patient to delete.
func (s *PatientService) Delete(ctx context.Context, id uint) (bool, error) {
	patient, err := s.repository.FindStored(ctx, id)
	if err != nil || patient == nil {
		return false, err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *PatientService) requireDoctor(ctx context.Context, doctorID uint) error {
	exists, err := s.doctors.Exists(ctx, doctorID)
	if err != nil {
		return err
	}
	if !exists {
		return &DoctorNotFoundError{DoctorID: doctorID}
	}
	return nil
}
