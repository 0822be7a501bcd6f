package repository

import (
	"context"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

// NewImage is the input for creating an image row directly from a URL.
type NewImage struct {
	ParentID uint
	URL      string
	Size     *int64
}

func (in NewImage) validate(parentField string) error {
	if in.ParentID == 0 {
		return apperror.Missing(parentField)
	}
	if in.URL == "" {
		return apperror.Missing("url")
	}
	if in.Size != nil && *in.Size < 0 {
		return apperror.Invalid("size", "must not be negative")
	}
	return nil
}

// QuestionImages manages images attached to questions.
type QuestionImages struct {
	st *store.Store
}

func NewQuestionImages(st *store.Store) *QuestionImages {
	return &QuestionImages{st: st}
}

func (r *QuestionImages) Create(ctx context.Context, in NewImage) (*model.QuestionImage, error) {
	if err := in.validate("id_question"); err != nil {
		return nil, err
	}
	if err := requireRow(ctx, r.st.Questions, in.ParentID); err != nil {
		return nil, err
	}
	img := &model.QuestionImage{QuestionID: in.ParentID, URL: in.URL, Size: in.Size}
	if err := r.st.QuestionImages.Insert(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *QuestionImages) List(ctx context.Context) ([]model.QuestionImage, error) {
	return r.st.QuestionImages.List(ctx)
}

func (r *QuestionImages) ListByQuestion(ctx context.Context, questionID uint) ([]model.QuestionImage, error) {
	return r.st.QuestionImages.ListBy(ctx, "question_id", questionID)
}

func (r *QuestionImages) Delete(ctx context.Context, id uint) error {
	return r.st.QuestionImages.Delete(ctx, id)
}

// DeleteByQuestion removes every image of a question and returns the count.
func (r *QuestionImages) DeleteByQuestion(ctx context.Context, questionID uint) (int64, error) {
	return r.st.QuestionImages.DeleteBy(ctx, "question_id", questionID)
}

// AnswerImages manages images attached to answers.
type AnswerImages struct {
	st *store.Store
}

func NewAnswerImages(st *store.Store) *AnswerImages {
	return &AnswerImages{st: st}
}

func (r *AnswerImages) Create(ctx context.Context, in NewImage) (*model.AnswerImage, error) {
	if err := in.validate("id_answer"); err != nil {
		return nil, err
	}
	if err := requireRow(ctx, r.st.Answers, in.ParentID); err != nil {
		return nil, err
	}
	img := &model.AnswerImage{AnswerID: in.ParentID, URL: in.URL, Size: in.Size}
	if err := r.st.AnswerImages.Insert(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *AnswerImages) List(ctx context.Context) ([]model.AnswerImage, error) {
	return r.st.AnswerImages.List(ctx)
}

func (r *AnswerImages) ListByAnswer(ctx context.Context, answerID uint) ([]model.AnswerImage, error) {
	return r.st.AnswerImages.ListBy(ctx, "answer_id", answerID)
}

func (r *AnswerImages) Delete(ctx context.Context, id uint) error {
	return r.st.AnswerImages.Delete(ctx, id)
}

func (r *AnswerImages) DeleteByAnswer(ctx context.Context, answerID uint) (int64, error) {
	return r.st.AnswerImages.DeleteBy(ctx, "answer_id", answerID)
}
