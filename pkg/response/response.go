package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-details-service/pkg/errors"
)

// NewErrorResp builds the error body for an HTTPError.
func NewErrorResp(err *pkgErrors.HTTPError) Resp {
	resp := Resp{
		ErrorCode: err.Code,
		Message:   err.Message,
	}
	if len(err.Details) > 0 {
		resp.Errors = err.Details
	}
	return resp
}

// OK sends 200 JSON with the resource as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with the created resource as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response. *HTTPError values keep their status and
// details; anything else is reported as a generic 500.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}
	c.JSON(httpErr.StatusCode, NewErrorResp(httpErr))
}

// InternalError sends 500 internal server error. The cause is not exposed.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too Many Requests",
	})
}
