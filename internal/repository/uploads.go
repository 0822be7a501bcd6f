package repository

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/logger"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/storage"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

// Uploads stores image files in a blob store and records them against
// their question or answer.
type Uploads struct {
	st    *store.Store
	blobs storage.BlobStore
}

func NewUploads(st *store.Store, blobs storage.BlobStore) *Uploads {
	return &Uploads{st: st, blobs: blobs}
}

// QuestionImages uploads files and attaches them to a question. Each row
// records the URL returned by the blob store and the file's byte size.
func (r *Uploads) QuestionImages(ctx context.Context, questionID uint, files []*multipart.FileHeader) ([]*model.QuestionImage, error) {
	if questionID == 0 {
		return nil, apperror.Missing("id_question")
	}
	if err := requireRow(ctx, r.st.Questions, questionID); err != nil {
		return nil, err
	}

	uploaded, err := r.save(ctx, files)
	if err != nil {
		return nil, err
	}

	images := make([]*model.QuestionImage, 0, len(uploaded))
	for _, u := range uploaded {
		size := u.Size
		images = append(images, &model.QuestionImage{QuestionID: questionID, URL: u.URL, Size: &size})
	}
	if err := r.st.QuestionImages.InsertMany(ctx, images); err != nil {
		return nil, err
	}
	return images, nil
}

// AnswerImages uploads files and attaches them to an answer.
func (r *Uploads) AnswerImages(ctx context.Context, answerID uint, files []*multipart.FileHeader) ([]*model.AnswerImage, error) {
	if answerID == 0 {
		return nil, apperror.Missing("id_answer")
	}
	if err := requireRow(ctx, r.st.Answers, answerID); err != nil {
		return nil, err
	}

	uploaded, err := r.save(ctx, files)
	if err != nil {
		return nil, err
	}

	images := make([]*model.AnswerImage, 0, len(uploaded))
	for _, u := range uploaded {
		size := u.Size
		images = append(images, &model.AnswerImage{AnswerID: answerID, URL: u.URL, Size: &size})
	}
	if err := r.st.AnswerImages.InsertMany(ctx, images); err != nil {
		return nil, err
	}
	return images, nil
}

// save checks every file before storing any of them.
func (r *Uploads) save(ctx context.Context, files []*multipart.FileHeader) ([]*storage.UploadedFile, error) {
	if len(files) == 0 {
		return nil, apperror.Missing("files")
	}
	for _, fh := range files {
		if !storage.IsImageFile(fh) {
			return nil, apperror.Invalid("files", fmt.Sprintf("%s is not an image", fh.Filename))
		}
	}

	uploaded := make([]*storage.UploadedFile, 0, len(files))
	for _, fh := range files {
		u, err := r.blobs.Save(ctx, fh)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", fh.Filename, err)
		}
		logger.AppLogger.Info("Image stored",
			zap.String("original", u.OriginalName),
			zap.String("url", u.URL),
			zap.Int64("size", u.Size))
		uploaded = append(uploaded, u)
	}
	return uploaded, nil
}
