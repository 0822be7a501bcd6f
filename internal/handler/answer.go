package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/response"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

type AnswerHandler struct {
	answers *repository.Answers
}

func NewAnswerHandler(answers *repository.Answers) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	answers, err := h.answers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

func (h *AnswerHandler) ListAnswersByQuestion(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	answers, err := h.answers.ListByQuestion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

func (h *AnswerHandler) GetAnswer(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	answer, err := h.answers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.CreateAnswerRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	answer, err := h.answers.Create(c.Request.Context(), repository.NewAnswer{
		QuestionID:  req.QuestionID,
		UserID:      req.UserID,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Answer added", gin.H{"answer": answer})
}

func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := helper.GetValidatedFromContext[validation.UpdateAnswerRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	answer, err := h.answers.Update(c.Request.Context(), id, repository.AnswerPatch{
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Answer updated", gin.H{"answer": answer})
}

func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.answers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Answer deleted", nil)
}
