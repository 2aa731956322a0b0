package domain

// Chapter is an ordered division of a subject.
type Chapter struct {
	Record
	Title       string `json:"title" dynamodbav:"title"`
	SubjectID   string `json:"subjectId" dynamodbav:"subjectId"`
	Position    int    `json:"position,omitempty" dynamodbav:"position,omitempty"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
}
