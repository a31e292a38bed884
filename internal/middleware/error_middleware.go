package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment-api/internal/app/models/dto"
)

// HandleAPIError writes the single failure shape of the API: 500 with the raw error text.
// The error is attached to the context so the request logger can report it.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}
