package repository

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/storage"
	"github.com/Diego-EC/questioner-backend/internal/testutil"
)

func TestImagesCreateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")

	img, err := f.questionImages.Create(ctx, NewImage{ParentID: q.ID, URL: "/upload/q.png", Size: ptr(int64(10))})
	require.NoError(t, err)
	assert.Equal(t, q.ID, img.QuestionID)

	_, err = f.questionImages.Create(ctx, NewImage{ParentID: 999, URL: "/upload/q.png"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.questionImages.Create(ctx, NewImage{ParentID: q.ID})
	assert.EqualError(t, err, "missing url parameter")

	_, err = f.answerImages.Create(ctx, NewImage{URL: "/upload/a.png"})
	assert.EqualError(t, err, "missing id_answer parameter")

	all, err := f.questionImages.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.questionImages.Delete(ctx, img.ID))
	assert.ErrorIs(t, f.questionImages.Delete(ctx, img.ID), apperror.ErrNotFound)
}

type recordingBlobs struct {
	saved []string
	err   error
}

func (b *recordingBlobs) Save(_ context.Context, fh *multipart.FileHeader) (*storage.UploadedFile, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.saved = append(b.saved, fh.Filename)
	return &storage.UploadedFile{
		URL:          "http://bucket.s3.amazonaws.com/" + fh.Filename,
		DiskType:     "s3",
		OriginalName: fh.Filename,
		ModifiedName: fh.Filename,
		Size:         fh.Size,
	}, nil
}

func TestUploadQuestionImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")

	blobs := &recordingBlobs{}
	uploads := NewUploads(f.st, blobs)
	files := testutil.FileHeaders(t,
		testutil.File{Field: "files", Name: "one.png", Content: testutil.PNG},
		testutil.File{Field: "files", Name: "two.png", Content: testutil.PNG},
	)

	images, err := uploads.QuestionImages(ctx, q.ID, files)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, []string{"one.png", "two.png"}, blobs.saved)
	for _, img := range images {
		assert.NotZero(t, img.ID)
		assert.Equal(t, q.ID, img.QuestionID)
		require.NotNil(t, img.Size)
		assert.EqualValues(t, len(testutil.PNG), *img.Size)
	}

	stored, err := f.questionImages.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "http://bucket.s3.amazonaws.com/one.png", stored[0].URL)
}

func TestUploadAnswerImagesLocal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")
	a := f.answer(t, q.ID, u.ID, "A1")

	uploads := NewUploads(f.st, storage.NewLocal(t.TempDir(), "/upload"))
	files := testutil.FileHeaders(t, testutil.File{Field: "files", Name: "shot.png", Content: testutil.PNG})

	images, err := uploads.AnswerImages(ctx, a.ID, files)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Regexp(t, `^/upload/[0-9a-f-]+\.png$`, images[0].URL)
	assert.Equal(t, a.ID, images[0].AnswerID)
}

func TestUploadRejectsBeforeStoring(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ana", "ana@x.com")
	q := f.question(t, u.ID, "Q1", "first")

	blobs := &recordingBlobs{}
	uploads := NewUploads(f.st, blobs)
	files := testutil.FileHeaders(t,
		testutil.File{Field: "files", Name: "ok.png", Content: testutil.PNG},
		testutil.File{Field: "files", Name: "notes.txt", Content: []byte("plain text")},
	)

	_, err := uploads.QuestionImages(ctx, q.ID, files)
	assert.EqualError(t, err, "invalid files parameter: notes.txt is not an image")
	assert.Empty(t, blobs.saved)

	_, err = uploads.QuestionImages(ctx, q.ID, nil)
	assert.EqualError(t, err, "missing files parameter")

	_, err = uploads.QuestionImages(ctx, 999, files)
	assert.EqualError(t, err, "question not found")

	uploads = NewUploads(f.st, &recordingBlobs{err: errors.New("bucket gone")})
	_, err = uploads.QuestionImages(ctx, q.ID, files[:1])
	assert.ErrorContains(t, err, "bucket gone")

	stored, err := f.questionImages.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
