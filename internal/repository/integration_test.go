//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Diego-EC/questioner-backend/internal/config"
	"github.com/Diego-EC/questioner-backend/internal/database"
	"github.com/Diego-EC/questioner-backend/internal/store"
	"github.com/Diego-EC/questioner-backend/internal/testutil"
)

// setupPostgres starts a PostgreSQL container and returns a migrated,
// role-seeded fixture on top of it.
func setupPostgres(t *testing.T) *fixture {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("questioner"),
		postgres.WithUsername("questioner"),
		postgres.WithPassword("questioner"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := database.New(config.DatabaseConfig{Driver: "postgres", DSN: connStr, Name: "questioner"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	require.NoError(t, database.Migrate(svc.DB()))
	testutil.SeedRoles(t, svc.DB())

	st := store.New(svc.DB())
	return &fixture{
		st:             st,
		clock:          testutil.NewClock(),
		users:          NewUsers(st),
		roles:          NewRoles(st),
		questions:      NewQuestions(st),
		answers:        NewAnswers(st),
		questionImages: NewQuestionImages(st),
		answerImages:   NewAnswerImages(st),
	}
}

func TestPostgresSearchAndCascade(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()

	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "How do CATS purr", "curious")
	f.question(t, u.ID, "Dogs", "Why do dogs bark at 100% volume")
	a := f.answer(t, q.ID, u.ID, "A1")

	views, err := f.questions.Search(ctx, "cats 100%")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.EqualValues(t, 1, views[0].NumberOfAnswers)
	assert.Equal(t, "Ana", views[0].UserName)

	views, err = f.questions.Search(ctx, "c_ts")
	require.NoError(t, err)
	assert.Empty(t, views)

	_, err = f.answerImages.Create(ctx, NewImage{ParentID: a.ID, URL: "/upload/a.png"})
	require.NoError(t, err)
	_, err = f.questions.MarkBestAnswer(ctx, q.ID, a.ID)
	require.NoError(t, err)

	require.NoError(t, f.questions.Delete(ctx, q.ID))

	answers, err := f.answers.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)
	images, err := f.answerImages.ListByAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestPostgresDuplicateEmail(t *testing.T) {
	f := setupPostgres(t)
	f.user(t, "Ana", "ana@x.com")

	_, err := f.users.Create(context.Background(), NewUser{Name: "Ana", Email: "ana@x.com", Password: "p"})
	assert.Error(t, err)
}
