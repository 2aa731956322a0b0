package domain

// Material is an uploaded file (video, PDF, notes). FileKey is the object
// storage key; AIFileID is set once the file has been pushed to the AI file
// API for question generation.
type Material struct {
	Record
	Name      string `json:"name" dynamodbav:"name"`
	FileKey   string `json:"fileKey,omitempty" dynamodbav:"fileKey,omitempty"`
	FileType  string `json:"fileType,omitempty" dynamodbav:"fileType,omitempty"`
	SizeBytes int64  `json:"sizeBytes,omitempty" dynamodbav:"sizeBytes,omitempty"`
	CourseID  string `json:"courseId,omitempty" dynamodbav:"courseId,omitempty"`
	AIFileID  string `json:"aiFileId,omitempty" dynamodbav:"aiFileId,omitempty"`
}
