package helper

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ValidatedKey is the gin context key the validation middleware binds
// request bodies under.
const ValidatedKey = "validated"

// SetValidated stores a bound request body for the handler.
func SetValidated[T any](c *gin.Context, req *T) {
	c.Set(ValidatedKey, req)
}

// GetValidatedFromContext returns the body bound by SetValidated. A miss
// means the route was registered without its validation middleware, so
// the error is reported as internal.
func GetValidatedFromContext[T any](c *gin.Context) (*T, error) {
	validated, exists := c.Get(ValidatedKey)
	if !exists {
		return nil, fmt.Errorf("no validated %T in context", *new(T))
	}

	data, ok := validated.(*T)
	if !ok {
		return nil, fmt.Errorf("validated body is %T, want *%T", validated, *new(T))
	}
	return data, nil
}
