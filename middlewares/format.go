package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
// The underlying error is only logged, never sent.
func HttpError(c *gin.Context, log zerolog.Logger, message string, status int, err error) {
	evt := log.Warn()
	if status >= 500 {
		evt = log.Error()
	}
	evt.Err(err).
		Str("request_id", RequestID(c)).
		Int("status", status).
		Msg(message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
