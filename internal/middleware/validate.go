package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/response"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

// Validate binds the JSON body into a T and stores it for helper.GetValidatedFromContext.
func Validate[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(T)
		if err := c.ShouldBindJSON(req); err != nil {
			if details := validation.Details(err); len(details) > 0 {
				response.Error(c, validation.Translate(err), details)
			} else {
				response.Error(c, validation.Translate(err))
			}
			return
		}
		helper.SetValidated(c, req)
		c.Next()
	}
}
