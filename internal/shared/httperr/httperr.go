// Package httperr maps application errors to HTTP responses.
package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"store_backend/internal/shared/apperr"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Respond writes the JSON error response matching the kind of err.
// Validation and conflict errors map to 400, unauthorized to 401, not_found
// to 404. Storage failures and unclassified errors are logged and reported
// as a generic 500 so that internal details never reach the client.
func Respond(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperr.Message(err)})
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperr.Message(err)})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperr.Message(err)})
	default:
		slog.Error("internal error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
