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

type DoctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   zerolog.Logger
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache, log zerolog.Logger) *DoctorRepository {
	return &DoctorRepository{db: db, cache: cache, log: log}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	r.invalidate(ctx, getDoctorCacheKey(doctor.ID))
	return nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	cacheKey := getDoctorCacheKey(id)

	var cached models.Doctor
	if hit, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		r.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to get doctor from cache")
	} else if hit {
		return &cached, nil
	}

	doctor, err := r.load(ctx, id)
	if err != nil || doctor == nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, cacheKey, doctor); err != nil {
		r.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to set doctor in cache")
	}
	return doctor, nil
}

// FindStored reads the doctor from the table. A miss also drops any cached
// copy left behind by a fill that raced a delete.
func (r *DoctorRepository) FindStored(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		r.invalidate(ctx, getDoctorCacheKey(id))
	}
	return doctor, nil
}

func (r *DoctorRepository) load(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

// Exists checks the doctors table directly, bypassing the cache.
func (r *DoctorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check doctor: %w", err)
	}
	return count > 0, nil
}

// Save writes name and specialty. It returns ErrNotFound when the row is gone.
func (r *DoctorRepository) Save(ctx context.Context, doctor *models.Doctor) error {
	result := r.db.WithContext(ctx).
		Model(doctor).
		Select("name", "specialty").
		Updates(doctor)
	r.invalidate(ctx, getDoctorCacheKey(doctor.ID))
	if result.Error != nil {
		return fmt.Errorf("failed to update doctor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the doctor together with every patient assigned to it. It
// returns ErrNotFound when there was no doctor to delete.
func (r *DoctorRepository) Delete(ctx context.Context, id uint) error {
	var patientIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Patient{}).Where("doctor_id = ?", id).Pluck("id", &patientIDs).Error; err != nil {
			return fmt.Errorf("failed to list patients of doctor: %w", err)
		}
		if err := tx.Where("doctor_id = ?", id).Delete(&models.Patient{}).Error; err != nil {
			return fmt.Errorf("failed to delete patients of doctor: %w", err)
		}
		result := tx.Delete(&models.Doctor{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete doctor: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.invalidate(ctx, getDoctorCacheKey(id))
		}
		return err
	}

	keys := make([]string, 0, len(patientIDs)+1)
	keys = append(keys, getDoctorCacheKey(id))
	for _, pid := range patientIDs {
		keys = append(keys, getPatientCacheKey(pid))
	}
	r.invalidate(ctx, keys...)
	return nil
}

func (r *DoctorRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.DeleteBatch(ctx, keys...); err != nil {
		r.log.Warn().Err(err).Strs("keys", keys).Msg("failed to delete doctor cache")
	}
}

func getDoctorCacheKey(id uint) string {
	return fmt.Sprintf("doctor_cache:%d", id)
}
