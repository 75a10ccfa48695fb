package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contact_management/internal/models"
	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// respondData writes the success envelope.
func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// respondPage writes the success envelope with paging metadata.
func respondPage(c *gin.Context, data any, paging models.Paging) {
	c.JSON(http.StatusOK, gin.H{"data": data, "paging": paging})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": msg})
}

// respondError maps service errors onto the HTTP error taxonomy;
// anything unrecognized is a 500 with a generic body.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validation *service.ValidationError
	var notFound *service.NotFoundError
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Fields})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"errors": conflict.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"errors": notFound.Error()})
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
	default:
		h.log.Errorw("request_failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Internal Server Error"})
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes
// a 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "err", err)
		respondBadRequest(c, "invalid body: "+err.Error())
		return false
	}
	return true
}

// paramInt parses a numeric path parameter, answering 400 on garbage.
func paramInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, name+" must be a number")
		return 0, false
	}
	return value, true
}

// queryInt parses an optional numeric query parameter; absent means 0.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, name+" must be a number")
		return 0, false
	}
	return value, true
}
