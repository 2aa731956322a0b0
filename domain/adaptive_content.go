package domain

// AdaptiveContent is remedial or advanced material served to a student based
// on their level within a course.
type AdaptiveContent struct {
	Record
	CourseID        string   `json:"courseId" dynamodbav:"courseId"`
	Level           string   `json:"level" dynamodbav:"level"`
	Title           string   `json:"title" dynamodbav:"title"`
	Body            string   `json:"body,omitempty" dynamodbav:"body,omitempty"`
	MediaKeys       []string `json:"mediaKeys,omitempty" dynamodbav:"mediaKeys,omitempty"`
	PrerequisiteIDs []string `json:"prerequisiteIds,omitempty" dynamodbav:"prerequisiteIds,omitempty"`
}
