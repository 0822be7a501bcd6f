package repository

import (
	"context"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/search"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

// NewQuestion is the input of Questions.Create.
type NewQuestion struct {
	UserID      uint
	Title       string
	Description string
	Link        *string
}

// QuestionPatch lists the question fields an update may change.
type QuestionPatch struct {
	Title       *string
	Description *string
	Link        *string
}

type Questions struct {
	st *store.Store
}

func NewQuestions(st *store.Store) *Questions {
	return &Questions{st: st}
}

func (r *Questions) Create(ctx context.Context, in NewQuestion) (*model.Question, error) {
	if in.UserID == 0 {
		return nil, apperror.Missing("id_user")
	}
	if in.Title == "" {
		return nil, apperror.Missing("title")
	}
	if in.Description == "" {
		return nil, apperror.Missing("description")
	}
	if err := requireRow(ctx, r.st.Users, in.UserID); err != nil {
		return nil, err
	}

	q := &model.Question{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := r.st.Questions.Insert(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Get loads a question with its author.
func (r *Questions) Get(ctx context.Context, id uint) (*model.Question, error) {
	return r.st.Questions.Get(ctx, id, "User")
}

// List returns every question decorated with its answer count and author name.
func (r *Questions) List(ctx context.Context) ([]model.QuestionView, error) {
	questions, err := r.st.Questions.List(ctx)
	if err != nil {
		return nil, err
	}
	return decorateQuestions(ctx, r.st, questions)
}

// ListByUser returns the decorated questions written by one user.
func (r *Questions) ListByUser(ctx context.Context, userID uint) ([]model.QuestionView, error) {
	questions, err := r.st.Questions.ListBy(ctx, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return decorateQuestions(ctx, r.st, questions)
}

// Search returns the decorated questions whose title or description
// contains any token of text. Text without a usable token matches nothing.
func (r *Questions) Search(ctx context.Context, text string) ([]model.QuestionView, error) {
	filter := search.Build(text, r.st.Dialect())
	if filter.Empty() {
		return []model.QuestionView{}, nil
	}
	questions, err := r.st.Questions.Where(ctx, filter.Clause, filter.Args...)
	if err != nil {
		return nil, err
	}
	return decorateQuestions(ctx, r.st, questions)
}

func (r *Questions) Update(ctx context.Context, id uint, patch QuestionPatch) (*model.Question, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.Invalid("title", "must not be empty")
		}
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			return nil, apperror.Invalid("description", "must not be empty")
		}
		fields["description"] = *patch.Description
	}
	if patch.Link != nil {
		fields["link"] = *patch.Link
	}

	if err := r.st.Questions.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return r.st.Questions.Get(ctx, id)
}

// Delete removes a question together with its answers, the answers'
// images and the question's images, in one transaction.
func (r *Questions) Delete(ctx context.Context, id uint) error {
	return r.st.Transaction(ctx, func(tx *store.Store) error {
		if err := requireRow(ctx, tx.Questions, id); err != nil {
			return err
		}

		answerIDs, err := tx.Answers.IDsBy(ctx, "question_id", id)
		if err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			// other questions should never point here, but a stale pointer must not survive
			if _, err := tx.Questions.UpdateBy(ctx, "selected_answer_id", answerIDs, map[string]any{"selected_answer_id": nil}); err != nil {
				return err
			}
			if _, err := tx.AnswerImages.DeleteBy(ctx, "answer_id", answerIDs); err != nil {
				return err
			}
			if _, err := tx.Answers.DeleteBy(ctx, "question_id", id); err != nil {
				return err
			}
		}
		if _, err := tx.QuestionImages.DeleteBy(ctx, "question_id", id); err != nil {
			return err
		}
		return tx.Questions.Delete(ctx, id)
	})
}

// MarkBestAnswer selects answerID as the best answer of questionID. The
// answer must belong to the question.
func (r *Questions) MarkBestAnswer(ctx context.Context, questionID, answerID uint) (*model.Question, error) {
	if questionID == 0 {
		return nil, apperror.Missing("id_question")
	}
	if answerID == 0 {
		return nil, apperror.Missing("id_answer")
	}

	if err := requireRow(ctx, r.st.Questions, questionID); err != nil {
		return nil, err
	}
	answer, err := r.st.Answers.Get(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.QuestionID != questionID {
		return nil, apperror.Invalid("id_answer", "answer does not belong to question")
	}

	if err := r.st.Questions.Update(ctx, questionID, map[string]any{"selected_answer_id": answerID}); err != nil {
		return nil, err
	}
	return r.st.Questions.Get(ctx, questionID)
}

// decorateQuestions attaches number_of_answers and user_name with one
// grouped count and one user lookup.
func decorateQuestions(ctx context.Context, st *store.Store, questions []model.Question) ([]model.QuestionView, error) {
	views := make([]model.QuestionView, 0, len(questions))
	if len(questions) == 0 {
		return views, nil
	}

	ids := make([]uint, 0, len(questions))
	userIDs := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
		userIDs = append(userIDs, q.UserID)
	}

	counts, err := st.Answers.CountBy(ctx, "question_id", ids)
	if err != nil {
		return nil, err
	}
	names, err := userNames(ctx, st, userIDs)
	if err != nil {
		return nil, err
	}

	for _, q := range questions {
		views = append(views, model.QuestionView{
			Question:        q,
			NumberOfAnswers: counts[q.ID],
			UserName:        names[q.UserID],
		})
	}
	return views, nil
}

func userNames(ctx context.Context, st *store.Store, ids []uint) (map[uint]string, error) {
	users, err := st.Users.ListBy(ctx, "id", ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

type existenceChecker interface {
	Exists(ctx context.Context, column string, value any) (bool, error)
	Entity() string
}

// requireRow returns a not-found error naming the table's entity when id is absent.
func requireRow(ctx context.Context, t existenceChecker, id uint) error {
	ok, err := t.Exists(ctx, "id", id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(t.Entity())
	}
	return nil
}
