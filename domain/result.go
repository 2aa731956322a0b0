package domain

// Answer records a single response inside a submission. SelectedOption is -1
// when the question was skipped.
type Answer struct {
	QuestionID     string `json:"questionId" dynamodbav:"questionId"`
	SelectedOption int    `json:"selectedOption" dynamodbav:"selectedOption"`
	Correct        bool   `json:"correct" dynamodbav:"correct"`
}

// Result is a graded assignment submission. Results are written once and
// never updated or deleted.
type Result struct {
	Record
	UserID       string   `json:"userId" dynamodbav:"userId"`
	AssignmentID string   `json:"assignmentId" dynamodbav:"assignmentId"`
	Score        float64  `json:"score" dynamodbav:"score"`
	TotalMarks   float64  `json:"totalMarks" dynamodbav:"totalMarks"`
	CorrectCount int      `json:"correctCount" dynamodbav:"correctCount"`
	WrongCount   int      `json:"wrongCount" dynamodbav:"wrongCount"`
	SkippedCount int      `json:"skippedCount" dynamodbav:"skippedCount"`
	Answers      []Answer `json:"answers,omitempty" dynamodbav:"answers,omitempty"`
	SubmittedAt  string   `json:"submittedAt" dynamodbav:"submittedAt"`
}
