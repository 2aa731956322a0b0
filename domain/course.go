package domain

// Course is a sellable unit of study grouping subjects, assignments and
// materials. Subject and tag references are plain ids resolved by follow-up
// point reads; nothing enforces them.
type Course struct {
	Record
	Title         string   `json:"title" dynamodbav:"title"`
	Description   string   `json:"description,omitempty" dynamodbav:"description,omitempty"`
	SubjectIDs    []string `json:"subjectIds,omitempty" dynamodbav:"subjectIds,omitempty"`
	Price         float64  `json:"price" dynamodbav:"price"`
	DurationWeeks int      `json:"durationWeeks,omitempty" dynamodbav:"durationWeeks,omitempty"`
	Level         string   `json:"level,omitempty" dynamodbav:"level,omitempty"`
	ThumbnailKey  string   `json:"thumbnailKey,omitempty" dynamodbav:"thumbnailKey,omitempty"`
	TagIDs        []string `json:"tagIds,omitempty" dynamodbav:"tagIds,omitempty"`
}
