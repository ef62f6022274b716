package dto

// CreateQuestionRequest is read from a JSON body or, for non-JSON requests,
// from query/form parameters.
type CreateQuestionRequest struct {
	Text string `json:"text" form:"text" binding:"required,max=255"`
}

// CreateAnswerRequest carries an optional user_id in any form uuid.Parse
// accepts; the server generates one when it is omitted.
type CreateAnswerRequest struct {
	Text   string  `json:"text" form:"text" binding:"required,max=255"`
	UserID *string `json:"user_id" form:"user_id"`
}
