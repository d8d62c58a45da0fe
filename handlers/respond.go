package handlers

import (
	"MedClinic/middlewares"
	"MedClinic/services"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

// parseID reads the :id path parameter. It writes a 400 response and
// reports false when the value is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its HTTP response.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var notFound *services.DoctorNotFoundError
	if errors.As(err, &notFound) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": notFound.Error()})
		return
	}

	var invalid validation.Errors
	if errors.As(err, &invalid) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": invalid})
		return
	}

	middlewares.HttpError(c, log, "internal server error", http.StatusInternalServerError, err)
}

// bindUpdate binds a partial update. An empty body is an update with every
// field omitted.
func bindUpdate(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
