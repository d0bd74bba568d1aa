package model

// swagger:model Result
type Result struct {
	BaseModel
	StudentID    uint        `gorm:"index;not null" json:"studentId"`
	Student      *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	AssignmentID uint        `gorm:"index;not null" json:"assignmentId"`
	Assignment   *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	// Accuracy is the 0 to 100 match score of the submitted content
	// against the assignment passage.
	Accuracy int    `gorm:"not null" json:"accuracy"`
	Mode     string `gorm:"size:20;not null" json:"mode"` // reading or writing
	Content  string `gorm:"type:text" json:"content"`
	// AudioURL points at the stored read-aloud clip, when one was
	// uploaded alongside a reading submission.
	AudioURL     string  `gorm:"size:512" json:"audioUrl,omitempty"`
	AudioSeconds float64 `json:"audioSeconds,omitempty"`
}

func (Result) TableName() string {
	return "results"
}
