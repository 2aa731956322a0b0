package domain

// Subject is a course topic area, e.g. "Physics" inside a test-prep course.
type Subject struct {
	Record
	Name        string `json:"name" dynamodbav:"name"`
	Code        string `json:"code,omitempty" dynamodbav:"code,omitempty"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
	CourseID    string `json:"courseId,omitempty" dynamodbav:"courseId,omitempty"`
}
