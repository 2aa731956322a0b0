package domain

// Status is the lifecycle state of a stored record. Deletion is soft for
// content entities: records move to StatusArchived instead of being removed.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// IsValid reports whether s is one of the known status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Course and adaptive-content difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Section content types.
const (
	ContentTypeVideo = "video"
	ContentTypeText  = "text"
	ContentTypeQuiz  = "quiz"
	ContentTypePDF   = "pdf"
)

// Record carries the fields every stored item has. Timestamps are RFC3339
// strings, matching what the tables already hold.
type Record struct {
	ID        string `json:"id" dynamodbav:"id"`
	Status    Status `json:"status" dynamodbav:"status"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string `json:"updatedAt" dynamodbav:"updatedAt"`
}
