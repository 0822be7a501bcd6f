package model

// Question is a post asking for answers. SelectedAnswerID is a plain
// nullable column pointing into the question's own answers; it carries no
// foreign key so the questions/answers tables do not form a cycle.
type Question struct {
	Base
	UserID           uint    `gorm:"index;not null" json:"id_user"`
	Title            string  `gorm:"type:varchar(100);not null" json:"title"`
	Description      string  `gorm:"type:varchar(1000);not null" json:"description"`
	Link             *string `gorm:"type:varchar(120)" json:"link"`
	SelectedAnswerID *uint   `gorm:"index" json:"id_answer_selected"`

	User    *User           `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
	Answers []Answer        `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Images  []QuestionImage `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

// QuestionView is a question decorated at read time.
type QuestionView struct {
	Question
	NumberOfAnswers int64  `json:"number_of_answers"`
	UserName        string `json:"user_name"`
}
