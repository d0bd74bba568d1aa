package repository

import (
	"lexiscreen_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Snapshot loads a user's unlock bounds keyed by exercise id.
func (r *ProgressRepository) Snapshot(userID uint) (map[string]int, error) {
	var rows []model.ProgressRecord
	if err := r.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	snapshot := make(map[string]int, len(rows))
	for _, row := range rows {
		snapshot[row.ExerciseID] = row.MaxUnlocked
	}
	return snapshot, nil
}

// Upsert writes one unlock bound, never regressing a concurrent higher
// value.
func (r *ProgressRepository) Upsert(userID uint, exerciseID string, maxUnlocked int) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "exercise_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"max_unlocked": gorm.Expr("GREATEST(max_unlocked, ?)", maxUnlocked),
		}),
	}).Create(&model.ProgressRecord{
		UserID:      userID,
		ExerciseID:  exerciseID,
		MaxUnlocked: maxUnlocked,
	}).Error
}
