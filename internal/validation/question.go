package validation

type CreateQuestionRequest struct {
	UserID      uint    `json:"id_user" binding:"required"`
	Title       string  `json:"title" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=1000"`
	Link        *string `json:"link" binding:"omitempty,max=120"`
}

type UpdateQuestionRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Link        *string `json:"link" binding:"omitempty,max=120"`
}

type MarkBestAnswerRequest struct {
	QuestionID uint `json:"id_question" binding:"required"`
	AnswerID   uint `json:"id_answer" binding:"required"`
}
