package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-tracker-app/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError sets the status code and
// error code; any other error is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status, code := http.StatusBadRequest, 1
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status, code = httpErr.StatusCode, httpErr.StatusCode
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	abort(c, pkgErrors.ErrUnauthorized)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	abort(c, pkgErrors.ErrForbidden)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	abort(c, pkgErrors.ErrTooManyRequests)
}

func abort(c *gin.Context, err *pkgErrors.HTTPError) {
	c.AbortWithStatusJSON(err.StatusCode, Resp{
		ErrorCode: err.StatusCode,
		Message:   err.Message,
	})
}
