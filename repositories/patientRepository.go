package repositories

import (
	"MedClinic/cache"
	"MedClinic/models"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PatientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   zerolog.Logger
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache, log zerolog.Logger) *PatientRepository {
	return &PatientRepository{db: db, cache: cache, log: log}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	r.invalidate(ctx, patient.ID)
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	cacheKey := getPatientCacheKey(id)

	var cached models.Patient
	if hit, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		r.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to get patient from cache")
	} else if hit {
		return &cached, nil
	}

	patient, err := r.load(ctx, id)
	if err != nil || patient == nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patient); err != nil {
		r.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to set patient in cache")
	}
	return patient, nil
}

// FindStored reads the patient from the table and drops a stale cached copy
// on a miss.
func (r *PatientRepository) FindStored(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		r.invalidate(ctx, id)
	}
	return patient, nil
}

func (r *PatientRepository) load(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// Save writes every column. It returns ErrNotFound when the row is gone.
func (r *PatientRepository) Save(ctx context.Context, patient *models.Patient) error {
	result := r.db.WithContext(ctx).
		Model(patient).
		Omit(clause.Associations).
		Select("name", "date_of_birth", "doctor_id").
		Updates(patient)
	r.invalidate(ctx, patient.ID)
	if result.Error != nil {
		return fmt.Errorf("failed to update patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id)
	r.invalidate(ctx, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PatientRepository) invalidate(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, getPatientCacheKey(id)); err != nil {
		r.log.Warn().Err(err).Uint("patient_id", id).Msg("failed to delete patient cache")
	}
}

func getPatientCacheKey(id uint) string {
	return fmt.Sprintf("patient_cache:%d", id)
}
