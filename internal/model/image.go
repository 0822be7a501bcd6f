package model

// QuestionImage is an image attached to a question. Size is in bytes.
type QuestionImage struct {
	Base
	QuestionID uint   `gorm:"index;not null" json:"id_question"`
	URL        string `gorm:"type:varchar(255);not null" json:"url"`
	Size       *int64 `json:"size"`
}

// AnswerImage is an image attached to an answer.
type AnswerImage struct {
	Base
	AnswerID uint   `gorm:"index;not null" json:"id_answer"`
	URL      string `gorm:"type:varchar(255);not null" json:"url"`
	Size     *int64 `json:"size"`
}

// All lists every model in dependency order, for migrations.
func All() []any {
	return []any{
		&Role{},
		&User{},
		&Question{},
		&Answer{},
		&QuestionImage{},
		&AnswerImage{},
	}
}
