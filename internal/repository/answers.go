package repository

import (
	"context"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

// NewAnswer is the input of Answers.Create.
type NewAnswer struct {
	QuestionID  uint
	UserID      uint
	Description string
	Link        *string
}

// AnswerPatch lists the answer fields an update may change.
type AnswerPatch struct {
	Description *string
	Link        *string
}

type Answers struct {
	st *store.Store
}

func NewAnswers(st *store.Store) *Answers {
	return &Answers{st: st}
}

func (r *Answers) Create(ctx context.Context, in NewAnswer) (*model.Answer, error) {
	if in.QuestionID == 0 {
		return nil, apperror.Missing("id_question")
	}
	if in.UserID == 0 {
		return nil, apperror.Missing("id_user")
	}
	if in.Description == "" {
		return nil, apperror.Missing("description")
	}
	if err := requireRow(ctx, r.st.Questions, in.QuestionID); err != nil {
		return nil, err
	}
	if err := requireRow(ctx, r.st.Users, in.UserID); err != nil {
		return nil, err
	}

	a := &model.Answer{
		QuestionID:  in.QuestionID,
		UserID:      in.UserID,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := r.st.Answers.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Answers) Get(ctx context.Context, id uint) (*model.Answer, error) {
	return r.st.Answers.Get(ctx, id)
}

// List returns every answer decorated with its author's name.
func (r *Answers) List(ctx context.Context) ([]model.AnswerView, error) {
	answers, err := r.st.Answers.List(ctx)
	if err != nil {
		return nil, err
	}
	return decorateAnswers(ctx, r.st, answers)
}

// ListByQuestion returns the decorated answers of one question.
func (r *Answers) ListByQuestion(ctx context.Context, questionID uint) ([]model.AnswerView, error) {
	answers, err := r.st.Answers.ListBy(ctx, "question_id", questionID)
	if err != nil {
		return nil, err
	}
	return decorateAnswers(ctx, r.st, answers)
}

func (r *Answers) Update(ctx context.Context, id uint, patch AnswerPatch) (*model.Answer, error) {
	fields := map[string]any{}
	if patch.Description != nil {
		if *patch.Description == "" {
			return nil, apperror.Invalid("description", "must not be empty")
		}
		fields["description"] = *patch.Description
	}
	if patch.Link != nil {
		fields["link"] = *patch.Link
	}

	if err := r.st.Answers.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return r.st.Answers.Get(ctx, id)
}

// Delete removes an answer and its images. A question that had selected
// the answer as best is left with no selection.
func (r *Answers) Delete(ctx context.Context, id uint) error {
	return r.st.Transaction(ctx, func(tx *store.Store) error {
		if err := requireRow(ctx, tx.Answers, id); err != nil {
			return err
		}
		if _, err := tx.Questions.UpdateBy(ctx, "selected_answer_id", id, map[string]any{"selected_answer_id": nil}); err != nil {
			return err
		}
		if _, err := tx.AnswerImages.DeleteBy(ctx, "answer_id", id); err != nil {
			return err
		}
		return tx.Answers.Delete(ctx, id)
	})
}

func decorateAnswers(ctx context.Context, st *store.Store, answers []model.Answer) ([]model.AnswerView, error) {
	views := make([]model.AnswerView, 0, len(answers))
	if len(answers) == 0 {
		return views, nil
	}

	userIDs := make([]uint, 0, len(answers))
	for _, a := range answers {
		userIDs = append(userIDs, a.UserID)
	}
	names, err := userNames(ctx, st, userIDs)
	if err != nil {
		return nil, err
	}

	for _, a := range answers {
		views = append(views, model.AnswerView{Answer: a, UserName: names[a.UserID]})
	}
	return views, nil
}
