package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/store"
	"github.com/Diego-EC/questioner-backend/internal/testutil"
)

type fixture struct {
	st             *store.Store
	clock          *testutil.Clock
	users          *Users
	roles          *Roles
	questions      *Questions
	answers        *Answers
	questionImages *QuestionImages
	answerImages   *AnswerImages
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := testutil.NewClock()
	st := store.New(testutil.NewDB(t), store.WithClock(clock.Now))
	return &fixture{
		st:             st,
		clock:          clock,
		users:          NewUsers(st),
		roles:          NewRoles(st),
		questions:      NewQuestions(st),
		answers:        NewAnswers(st),
		questionImages: NewQuestionImages(st),
		answerImages:   NewAnswerImages(st),
	}
}

func (f *fixture) user(t *testing.T, name, email string) *model.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), NewUser{Name: name, Email: email, Password: "secret"})
	require.NoError(t, err)
	return u
}

func (f *fixture) question(t *testing.T, userID uint, title, description string) *model.Question {
	t.Helper()
	q, err := f.questions.Create(context.Background(), NewQuestion{UserID: userID, Title: title, Description: description})
	require.NoError(t, err)
	return q
}

func (f *fixture) answer(t *testing.T, questionID, userID uint, description string) *model.Answer {
	t.Helper()
	a, err := f.answers.Create(context.Background(), NewAnswer{QuestionID: questionID, UserID: userID, Description: description})
	require.NoError(t, err)
	return a
}
