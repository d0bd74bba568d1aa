package repository

import (
	"lexiscreen_backend/internal/model"

	"gorm.io/gorm"
)

type ScreeningRepository struct {
	DB *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) *ScreeningRepository {
	return &ScreeningRepository{DB: db}
}

func (r *ScreeningRepository) Create(record *model.ScreeningRecord) error {
	return r.DB.Create(record).Error
}

func (r *ScreeningRepository) FindLatestByUser(userID uint) (*model.ScreeningRecord, error) {
	var record model.ScreeningRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record).Error
	return &record, err
}

func (r *ScreeningRepository) FindByUser(userID uint) ([]model.ScreeningRecord, error) {
	var records []model.ScreeningRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
