package apierror

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Handler is the centralized error reporter: handlers attach errors to the
// gin context and this middleware renders the last one as the shared
// {message, data?} envelope with the error's status code.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		apiErr := From(c.Errors.Last().Err)
		log.WithFields(log.Fields{
			"status": apiErr.StatusCode,
			"path":   c.Request.URL.Path,
		}).Error(apiErr.Message)

		c.JSON(apiErr.StatusCode, apiErr)
	}
}
