package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/response"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

type QuestionHandler struct {
	questions *repository.Questions
}

func NewQuestionHandler(questions *repository.Questions) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// ListQuestions returns every question with number_of_answers and user_name.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questions.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) ListQuestionsByUser(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	questions, err := h.questions.ListByUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion returns a question with its author embedded.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	question, err := h.questions.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.CreateQuestionRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	question, err := h.questions.Create(c.Request.Context(), repository.NewQuestion{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Question added", gin.H{"question": question})
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := helper.GetValidatedFromContext[validation.UpdateQuestionRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	question, err := h.questions.Update(c.Request.Context(), id, repository.QuestionPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Question updated", gin.H{"question": question})
}

// DeleteQuestion removes the question, its answers and every image of both.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.questions.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Question deleted", nil)
}

func (h *QuestionHandler) MarkBestAnswer(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.MarkBestAnswerRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	question, err := h.questions.MarkBestAnswer(c.Request.Context(), req.QuestionID, req.AnswerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Answer marked", gin.H{"question": question})
}

// SearchQuestions matches the words of the path text against titles and
// descriptions.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	questions, err := h.questions.Search(c.Request.Context(), c.Param("text"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "Search result", gin.H{"questions": questions})
}
