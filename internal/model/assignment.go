package model

// AssignmentTaskType is fixed for now: every assignment offers both a
// read-aloud and a writing response.
const AssignmentTaskHybrid = "hybrid"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	Title     string `gorm:"size:255;not null" json:"title"`
	Text      string `gorm:"type:text;not null" json:"text"`
	TaskType  string `gorm:"size:20;default:'hybrid'" json:"taskType"`
	CreatorID uint   `gorm:"index" json:"creatorId"`
	Creator   *User  `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}
