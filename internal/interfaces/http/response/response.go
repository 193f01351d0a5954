package response

import (
	"errors"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	domainerrors "leadflow.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response using the envelope
// {message, errors?, stack?}. The stack, and the raw cause of internal
// errors, are exposed only outside release mode.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.Internal(err)
	}

	body := gin.H{"message": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}

	if gin.Mode() != gin.ReleaseMode && appErr.Status >= 500 {
		if appErr.Err != nil {
			body["message"] = appErr.Err.Error()
		}
		body["stack"] = string(debug.Stack())
	}

	c.JSON(appErr.Status, body)
}
