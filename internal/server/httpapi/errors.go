package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	codeValidation           = "validation"
	codeNotFound             = "not_found"
	codeDuplicateApplication = "duplicate_application"
	codeInternal             = "internal"
)

// writeError renders err through the uniform envelope. Sentinel wrapping
// decides both the status and the machine-readable code; anything
// unrecognized is an opaque 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": errMessage(err), "code": codeDuplicateApplication})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": codeNotFound})
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMessage(err), "code": codeValidation})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
	}
}

// errMessage strips the sentinel prefix ("validation error: ...") so the
// client sees only the human part.
func errMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{common.ErrDuplicateApplication, common.ErrValidation} {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
