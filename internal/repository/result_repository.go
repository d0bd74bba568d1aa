package repository

import (
	"lexiscreen_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.Result) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.Preload("Student").Preload("Assignment").First(&result, id).Error
	return &result, err
}

func (r *ResultRepository) Update(result *model.Result) error {
	return r.DB.Save(result).Error
}

// FindAllWithRelations lists submissions for the teacher dashboard,
// student and assignment preloaded, newest first.
func (r *ResultRepository) FindAllWithRelations(page, limit int) ([]model.Result, int64, error) {
	var results []model.Result
	var total int64

	if err := r.DB.Model(&model.Result{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Student").Preload("Assignment").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error
	return results, total, err
}

func (r *ResultRepository) FindByStudent(studentID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Assignment").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}
