package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "secure-intent-router/pkg/errors"
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

// Error renders err. An *HTTPError keeps its status and message; anything else becomes
// a generic 500 so internal details never leak.
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, nil)
}

// ErrorWithData is Error with an extra payload, e.g. the offending field.
func ErrorWithData(c *gin.Context, err error, data any) {
	c.JSON(errorResp(err, data))
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errorResp(err, nil))
}

func errorResp(err error, data any) (int, Resp) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
	return httpErr.StatusCode, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
		Errors:    data,
	}
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
	Abort(c, pkgErrors.ErrUnauthorized)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Abort(c, pkgErrors.ErrForbidden)
}
