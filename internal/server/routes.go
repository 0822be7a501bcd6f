package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/auth"
	"github.com/Diego-EC/questioner-backend/internal/handler"
	"github.com/Diego-EC/questioner-backend/internal/middleware"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/storage"
	"github.com/Diego-EC/questioner-backend/internal/store"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.Timeout(s.cfg.RequestTimeout))

	st := store.New(s.db.DB())
	users := repository.NewUsers(st)
	tokens := auth.NewTokens(s.cfg.JWT.Secret, s.cfg.JWT.TTL)

	authHandler := handler.NewAuthHandler(auth.NewService(users, tokens), users)
	userHandler := handler.NewUserHandler(users, repository.NewRoles(st))
	questionHandler := handler.NewQuestionHandler(repository.NewQuestions(st))
	answerHandler := handler.NewAnswerHandler(repository.NewAnswers(st))
	imageHandler := handler.NewImageHandler(
		repository.NewQuestionImages(st),
		repository.NewAnswerImages(st),
		repository.NewUploads(st, s.blobs),
	)
	healthHandler := handler.NewHealthHandler(s.db)

	if local, ok := s.blobs.(*storage.Local); ok && local.PublicPath() != "" {
		r.Static(local.PublicPath(), local.Dir())
	}

	// public
	r.GET("/health", healthHandler.Health)
	r.POST("/login", middleware.Validate[validation.LoginRequest](), authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/user", middleware.Validate[validation.CreateUserRequest](), userHandler.CreateUser)

	protected := r.Group("/", middleware.RequireAuth(tokens))
	{
		protected.GET("/check-protected", authHandler.CheckProtected)
		protected.POST("/check-protected", authHandler.CheckProtected)

		protected.GET("/roles", userHandler.ListRoles)
		protected.GET("/users", userHandler.ListUsers)
		protected.GET("/user/:id", userHandler.GetUser)
		protected.GET("/user-by-email/:email", userHandler.GetUserByEmail)
		protected.PUT("/user/:id", middleware.Validate[validation.UpdateUserRequest](), userHandler.UpdateUser)
		protected.PUT("/user-is-active", middleware.RequireAdmin(), middleware.Validate[validation.UserIsActiveRequest](), userHandler.UpdateUserIsActive)

		protected.GET("/questions", questionHandler.ListQuestions)
		protected.GET("/question/:id", questionHandler.GetQuestion)
		protected.GET("/questions-by-user-id/:id", questionHandler.ListQuestionsByUser)
		protected.POST("/question", middleware.Validate[validation.CreateQuestionRequest](), questionHandler.CreateQuestion)
		protected.PUT("/question/:id", middleware.Validate[validation.UpdateQuestionRequest](), questionHandler.UpdateQuestion)
		protected.DELETE("/question/:id", questionHandler.DeleteQuestion)
		protected.PUT("/mark-best-answer", middleware.Validate[validation.MarkBestAnswerRequest](), questionHandler.MarkBestAnswer)
		protected.GET("/search-questions-by-string/:text", questionHandler.SearchQuestions)

		protected.GET("/answers", answerHandler.ListAnswers)
		protected.GET("/answer/:id", answerHandler.GetAnswer)
		protected.GET("/answers-by-question-id/:id", answerHandler.ListAnswersByQuestion)
		protected.POST("/answer", middleware.Validate[validation.CreateAnswerRequest](), answerHandler.CreateAnswer)
		protected.PUT("/answer/:id", middleware.Validate[validation.UpdateAnswerRequest](), answerHandler.UpdateAnswer)
		protected.DELETE("/answer/:id", answerHandler.DeleteAnswer)

		protected.GET("/question-images", imageHandler.ListQuestionImages)
		protected.GET("/question-images-by-question-id/:id", imageHandler.ListQuestionImagesByQuestion)
		protected.POST("/question-images", middleware.Validate[validation.QuestionImageRequest](), imageHandler.CreateQuestionImage)
		protected.DELETE("/question-image/:id", imageHandler.DeleteQuestionImage)
		protected.DELETE("/question-images-delete-by-question-id/:id", imageHandler.DeleteQuestionImagesByQuestion)

		protected.GET("/answer-images", imageHandler.ListAnswerImages)
		protected.GET("/answer-images-by-answer-id/:id", imageHandler.ListAnswerImagesByAnswer)
		protected.POST("/answer-images", middleware.Validate[validation.AnswerImageRequest](), imageHandler.CreateAnswerImage)
		protected.DELETE("/answer-image/:id", imageHandler.DeleteAnswerImage)
		protected.DELETE("/answer-images-delete-by-answer-id/:id", imageHandler.DeleteAnswerImagesByAnswer)

		protected.POST("/upload-question-images", imageHandler.UploadQuestionImages)
		protected.POST("/upload-answer-images", imageHandler.UploadAnswerImages)
	}

	return r
}
