package domain

// Section is a single lesson inside a chapter. ContentType decides how the
// frontend renders it; MaterialID points at the backing material when the
// section is a video or PDF.
type Section struct {
	Record
	Title       string `json:"title" dynamodbav:"title"`
	ChapterID   string `json:"chapterId" dynamodbav:"chapterId"`
	Position    int    `json:"position,omitempty" dynamodbav:"position,omitempty"`
	ContentType string `json:"contentType,omitempty" dynamodbav:"contentType,omitempty"`
	MaterialID  string `json:"materialId,omitempty" dynamodbav:"materialId,omitempty"`
}
