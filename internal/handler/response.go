package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"userhub/internal/repository"
)

// MessageResponse is the minimal JSON body every non-2xx response
// carries.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondRepoError maps a repository error to the appropriate HTTP
// response. Missing records become 404; everything else, including a
// malformed identifier, is a store failure reported with the
// operation's generic message so no internal detail leaks.
func respondRepoError(c *gin.Context, err error, failureMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, MessageResponse{Message: failureMessage})
}
