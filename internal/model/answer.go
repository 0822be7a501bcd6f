package model

type Answer struct {
	Base
	QuestionID  uint    `gorm:"index;not null" json:"id_question"`
	UserID      uint    `gorm:"index;not null" json:"id_user"`
	Description string  `gorm:"type:varchar(1000);not null" json:"description"`
	Link        *string `gorm:"type:varchar(120)" json:"link"`

	User   *User         `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Images []AnswerImage `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"-"`
}

// AnswerView is an answer decorated with its author's name.
type AnswerView struct {
	Answer
	UserName string `json:"user_name"`
}
