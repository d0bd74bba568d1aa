package model

import "encoding/json"

// ScreeningRecord stores one completed screening run: the demographic
// inputs, the derived feature payload sent to the classifier and the
// label that came back. Kept per run so risk history survives relabeling.
// swagger:model ScreeningRecord
type ScreeningRecord struct {
	BaseModel
	UserID         uint           `gorm:"index;not null" json:"userId"`
	Age            int            `gorm:"not null" json:"age"`
	Gender         string         `gorm:"size:20;not null" json:"gender"`
	NativeLangCode int            `gorm:"default:1" json:"nativeLangCode"`
	Payload        json.RawMessage `gorm:"type:json" json:"payload"`
	RiskLevel      string         `gorm:"size:20" json:"riskLevel"`
	Probability    float64        `json:"probability"`
}

func (ScreeningRecord) TableName() string {
	return "screening_records"
}

// ProgressRecord persists the per-exercise unlock bound, one row per
// user and exercise.
type ProgressRecord struct {
	BaseModel
	UserID      uint   `gorm:"index:idx_progress_user_exercise,unique;not null" json:"userId"`
	ExerciseID  string `gorm:"index:idx_progress_user_exercise,unique;size:40;not null" json:"exerciseId"`
	MaxUnlocked int    `gorm:"default:0" json:"maxUnlocked"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
