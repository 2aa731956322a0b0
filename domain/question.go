package domain

// Question is a multiple-choice question belonging to an assignment.
// CorrectOption is an index into Options.
type Question struct {
	Record
	Text          string   `json:"text" dynamodbav:"text"`
	AssignmentID  string   `json:"assignmentId" dynamodbav:"assignmentId"`
	Options       []string `json:"options" dynamodbav:"options"`
	CorrectOption int      `json:"correctOption" dynamodbav:"correctOption"`
	Marks         float64  `json:"marks,omitempty" dynamodbav:"marks,omitempty"`
	NegativeMarks float64  `json:"negativeMarks,omitempty" dynamodbav:"negativeMarks,omitempty"`
	Explanation   string   `json:"explanation,omitempty" dynamodbav:"explanation,omitempty"`
	TagIDs        []string `json:"tagIds,omitempty" dynamodbav:"tagIds,omitempty"`
}
