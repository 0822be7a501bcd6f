package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

func TestQuestionsCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")

	_, err := f.questions.Create(ctx, NewQuestion{UserID: u.ID, Description: "d"})
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.EqualError(t, err, "missing title parameter")

	_, err = f.questions.Create(ctx, NewQuestion{UserID: 999, Title: "t", Description: "d"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualError(t, err, "user not found")
}

func TestQuestionsListIsDecorated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.user(t, "Ana", "ana@x.com")
	bob := f.user(t, "Bob", "bob@x.com")

	q1 := f.question(t, ana.ID, "Q1", "first")
	f.question(t, bob.ID, "Q2", "second")
	f.answer(t, q1.ID, bob.ID, "A1")

	views, err := f.questions.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, q1.ID, views[0].ID)
	assert.EqualValues(t, 1, views[0].NumberOfAnswers)
	assert.Equal(t, "Ana", views[0].UserName)
	assert.EqualValues(t, 0, views[1].NumberOfAnswers)
	assert.Equal(t, "Bob", views[1].UserName)

	mine, err := f.questions.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Q2", mine[0].Title)

	none, err := f.questions.ListByUser(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestQuestionsUpdateIsPartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")

	got, err := f.questions.Update(ctx, q.ID, QuestionPatch{Link: ptr("https://go.dev")})
	require.NoError(t, err)
	assert.Equal(t, "Q1", got.Title)
	assert.Equal(t, "first", got.Description)
	require.NotNil(t, got.Link)
	assert.Equal(t, "https://go.dev", *got.Link)

	_, err = f.questions.Update(ctx, q.ID, QuestionPatch{Title: ptr("")})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.questions.Update(ctx, 999, QuestionPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestQuestionsDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")
	other := f.question(t, u.ID, "Q2", "second")
	a := f.answer(t, q.ID, u.ID, "A1")
	kept := f.answer(t, other.ID, u.ID, "A2")

	_, err := f.questionImages.Create(ctx, NewImage{ParentID: q.ID, URL: "/upload/q.png"})
	require.NoError(t, err)
	_, err = f.answerImages.Create(ctx, NewImage{ParentID: a.ID, URL: "/upload/a.png"})
	require.NoError(t, err)
	_, err = f.questions.MarkBestAnswer(ctx, q.ID, a.ID)
	require.NoError(t, err)

	require.NoError(t, f.questions.Delete(ctx, q.ID))

	_, err = f.questions.Get(ctx, q.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	answers, err := f.answers.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)

	qImages, err := f.questionImages.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, qImages)

	aImages, err := f.answerImages.ListByAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, aImages)

	_, err = f.answers.Get(ctx, kept.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.questions.Delete(ctx, q.ID), apperror.ErrNotFound)
}

func TestMarkBestAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")
	other := f.question(t, u.ID, "Q2", "second")
	a := f.answer(t, q.ID, u.ID, "A1")
	foreign := f.answer(t, other.ID, u.ID, "A2")

	got, err := f.questions.MarkBestAnswer(ctx, q.ID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SelectedAnswerID)
	assert.Equal(t, a.ID, *got.SelectedAnswerID)

	_, err = f.questions.MarkBestAnswer(ctx, q.ID, foreign.ID)
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id_answer", verr.Field)

	_, err = f.questions.MarkBestAnswer(ctx, q.ID, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.questions.MarkBestAnswer(ctx, 0, a.ID)
	assert.True(t, apperror.IsValidation(err))
}

func TestQuestionsSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	f.question(t, u.ID, "How do cats purr", "curious")
	f.question(t, u.ID, "Dogs", "Why do dogs bark at night")
	f.question(t, u.ID, "Gardening", "tomatoes in 100% shade")

	tests := []struct {
		name   string
		text   string
		titles []string
	}{
		{"title match", "cats", []string{"How do cats purr"}},
		{"description match", "bark", []string{"Dogs"}},
		{"case insensitive", "CATS", []string{"How do cats purr"}},
		{"any token matches", "cats bark", []string{"How do cats purr", "Dogs"}},
		{"short tokens ignored", "do a cats", []string{"How do cats purr"}},
		{"underscore is literal", "c_ts", nil},
		{"percent matched literally", "100%", []string{"Gardening"}},
		{"only short tokens", "do a", nil},
		{"empty", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := f.questions.Search(ctx, tt.text)
			require.NoError(t, err)
			require.NotNil(t, views)

			var titles []string
			for _, v := range views {
				titles = append(titles, v.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}
