package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/response"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

// ImageHandler serves image rows of questions and answers, and multipart
// uploads that create them.
type ImageHandler struct {
	questionImages *repository.QuestionImages
	answerImages   *repository.AnswerImages
	uploads        *repository.Uploads
}

func NewImageHandler(questionImages *repository.QuestionImages, answerImages *repository.AnswerImages, uploads *repository.Uploads) *ImageHandler {
	return &ImageHandler{questionImages: questionImages, answerImages: answerImages, uploads: uploads}
}

func (h *ImageHandler) ListQuestionImages(c *gin.Context) {
	images, err := h.questionImages.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) ListQuestionImagesByQuestion(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	images, err := h.questionImages.ListByQuestion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) CreateQuestionImage(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.QuestionImageRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	image, err := h.questionImages.Create(c.Request.Context(), repository.NewImage{
		ParentID: req.QuestionID,
		URL:      req.URL,
		Size:     req.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Question Image added", gin.H{"image": image})
}

func (h *ImageHandler) DeleteQuestionImage(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.questionImages.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "QuestionImage deleted", nil)
}

func (h *ImageHandler) DeleteQuestionImagesByQuestion(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.questionImages.DeleteByQuestion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "QuestionImages deleted", gin.H{"deleted": n})
}

func (h *ImageHandler) ListAnswerImages(c *gin.Context) {
	images, err := h.answerImages.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) ListAnswerImagesByAnswer(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	images, err := h.answerImages.ListByAnswer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) CreateAnswerImage(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.AnswerImageRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	image, err := h.answerImages.Create(c.Request.Context(), repository.NewImage{
		ParentID: req.AnswerID,
		URL:      req.URL,
		Size:     req.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Answer Image added", gin.H{"image": image})
}

func (h *ImageHandler) DeleteAnswerImage(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.answerImages.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "AnswerImage deleted", nil)
}

func (h *ImageHandler) DeleteAnswerImagesByAnswer(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.answerImages.DeleteByAnswer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "AnswerImages deleted", gin.H{"deleted": n})
}

// UploadQuestionImages stores every file of the multipart form and
// attaches it to the question named by the id_question field.
func (h *ImageHandler) UploadQuestionImages(c *gin.Context) {
	questionID, err := helper.FormID(c, "id_question")
	if err != nil {
		response.Error(c, err)
		return
	}
	files, err := helper.FormFiles(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	images, err := h.uploads.QuestionImages(c.Request.Context(), questionID, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Images uploaded", gin.H{"images": images})
}

func (h *ImageHandler) UploadAnswerImages(c *gin.Context) {
	answerID, err := helper.FormID(c, "id_answer")
	if err != nil {
		response.Error(c, err)
		return
	}
	files, err := helper.FormFiles(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	images, err := h.uploads.AnswerImages(c.Request.Context(), answerID, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Images uploaded", gin.H{"images": images})
}
