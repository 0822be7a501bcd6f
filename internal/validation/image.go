package validation

// QuestionImageRequest registers an image that is already hosted somewhere.
type QuestionImageRequest struct {
	QuestionID uint   `json:"id_question" binding:"required"`
	URL        string `json:"url" binding:"required,max=255"`
	Size       *int64 `json:"size" binding:"omitempty,min=0"`
}

type AnswerImageRequest struct {
	AnswerID uint   `json:"id_answer" binding:"required"`
	URL      string `json:"url" binding:"required,max=255"`
	Size     *int64 `json:"size" binding:"omitempty,min=0"`
}
