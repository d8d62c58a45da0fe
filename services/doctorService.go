package services

import (
	"MedClinic/models"
	"MedClinic/repositories"
	"MedClinic/utils"
	"context"
	"errors"
)

type DoctorService struct {
	repository repositories.DoctorRepositoryContract
}

func NewDoctorService(repository repositories.DoctorRepositoryContract) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) Create(ctx context.Context, input models.DoctorInput) (*models.DoctorResponse, error) {
	if err := utils.ValidateDoctorInput(input.Name, input.Specialty); err != nil {
		return nil, err
	}

	doctor := &models.Doctor{Name: input.Name, Specialty: input.Specialty}
	if err := s.repository.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return ToDoctorResponse(doctor), nil
}

// GetByID returns (nil, nil) when the doctor does not exist.
func (s *DoctorService) GetByID(ctx context.Context, id uint) (*models.DoctorResponse, error) {
	doctor, err := s.repository.GetByID(ctx, id)
	if err != nil || doctor == nil {
		return nil, err
	}
	return ToDoctorResponse(doctor), nil
}

// Update overwrites every supplied field and leaves the rest untouched.
// Empty strings count as not supplied. The doctor is read from storage, never
// the cache, and (nil, nil) is returned when it does not exist.
func (s *DoctorService) Update(ctx context.Context, id uint, update models.DoctorUpdate) (*models.DoctorResponse, error) {
	if err := utils.ValidateDoctorUpdate(update.Name, update.Specialty); err != nil {
		return nil, err
	}

	doctor, err := s.repository.FindStored(ctx, id)
	if err != nil || doctor == nil {
		return nil, err
	}

	merged := *doctor
	if utils.Supplied(update.Name) {
		merged.Name = *update.Name
	}
	if utils.Supplied(update.Specialty) {
		merged.Specialty = *update.Specialty
	}

	if err := s.repository.Save(ctx, &merged); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToDoctorResponse(&merged), nil
}

// Delete reports false when there was no doctor to delete. Patients assigned
// to the doctor are deleted with it.
func (s *DoctorService) Delete(ctx context.Context, id uint) (bool, error) {
	doctor, err := s.repository.FindStored(ctx, id)
	if err != nil || doctor == nil {
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
