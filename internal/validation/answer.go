package validation

type CreateAnswerRequest struct {
	QuestionID  uint    `json:"id_question" binding:"required"`
	UserID      uint    `json:"id_user" binding:"required"`
	Description string  `json:"description" binding:"required,max=1000"`
	Link        *string `json:"link" binding:"omitempty,max=120"`
}

type UpdateAnswerRequest struct {
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Link        *string `json:"link" binding:"omitempty,max=120"`
}
