package repository

import (
	"lexiscreen_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, id).Error
	return &assignment, err
}

// FindAll returns every assignment newest first. The set is small: one
// class of teachers authoring passages.
func (r *AssignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Order("created_at DESC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Update(assignment *model.Assignment) error {
	return r.DB.Save(assignment).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}
