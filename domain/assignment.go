package domain

// Assignment is a timed test attached to a course, optionally scoped to a
// section. QuestionIDs is denormalized for quick display counts; the
// questions table is the source of truth.
type Assignment struct {
	Record
	Title           string   `json:"title" dynamodbav:"title"`
	CourseID        string   `json:"courseId" dynamodbav:"courseId"`
	SectionID       string   `json:"sectionId,omitempty" dynamodbav:"sectionId,omitempty"`
	TotalMarks      float64  `json:"totalMarks,omitempty" dynamodbav:"totalMarks,omitempty"`
	PassMarks       float64  `json:"passMarks,omitempty" dynamodbav:"passMarks,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty" dynamodbav:"durationMinutes,omitempty"`
	QuestionIDs     []string `json:"questionIds,omitempty" dynamodbav:"questionIds,omitempty"`
	DueAt           string   `json:"dueAt,omitempty" dynamodbav:"dueAt,omitempty"`
}
