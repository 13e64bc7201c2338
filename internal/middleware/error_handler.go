package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/pkg/logger"
)

// ErrorHandler translates domain errors attached via c.Error into uniform
// JSON responses: NotFound -> 404, Conflict -> 409, anything else -> 500
// with a generic message. Unexpected errors are logged server-side only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var notFound *models.NotFoundError
		var conflict *models.ConflictError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			logger.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "an unexpected error occurred"})
		}
	}
}
