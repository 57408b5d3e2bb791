package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/response"
)

// storeErr maps a repository failure onto the wire contract: ErrNotFound
// becomes a 404 with a resource-specific message, anything else a 500 with
// the underlying message in the error body.
func storeErr(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repo.ErrNotFound) {
		response.Message(c, http.StatusNotFound, notFoundMsg)
		return
	}
	response.Err(c, http.StatusInternalServerError, err.Error())
}
