package handler

import (
	"errors"
	"net/http"
	"strconv"

	"recipehub/controller"
	"recipehub/entity"
	"recipehub/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// respondError converts errors to the uniform response bodies: domain errors
// become 400 with {"error": msg}, validation errors become a field-keyed map,
// author-only violations become 403. Anything else is a 500 and gets logged;
// no domain error ever propagates as an unhandled fault.
func respondError(c *gin.Context, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ve.Fields)
	case errors.Is(err, controller.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound),
		errors.Is(err, entity.ErrConflict),
		errors.Is(err, entity.ErrAbsentEdge),
		errors.Is(err, entity.ErrSelfReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// pagination reads limit/offset query parameters with defaults and a cap.
func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
