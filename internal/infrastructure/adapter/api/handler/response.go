package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const invalidBodyMessage = "invalid request body"

// StatusCode maps a domain error onto an HTTP status.
// Missing or bad credentials are 401, every other permission failure is 403.
// Store failures that may succeed on retry are 503.
func StatusCode(err error) int {
	switch errs.KindOf(err) {
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindNotAuthorized:
		if errors.Is(err, errs.ErrUnauthenticated) || errors.Is(err, errs.ErrInvalidCredentials) {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		if errs.IsRetryableError(err) {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	}
}

// respondError writes err in the API error format. Internal details never reach the body.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", coreport.ErrorFields(err, map[string]any{
			"operation": operation,
			"path":      c.Request.URL.Path,
		}))
	}
	_ = c.Error(err)

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Kind:    string(errs.KindOf(err)),
		Message: errs.PublicMessage(err),
	})
}

// respondBindError reports a malformed request body. The binding detail stays in
// the request log and never reaches the caller.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidInput,
		Kind:    string(errs.KindInvalidInput),
		Message: invalidBodyMessage,
	})
}

// callerID returns the authenticated caller, answering 401 when it is missing
func callerID(c *gin.Context, logger coreport.Logger) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, logger, "resolve caller", errs.ErrUnauthenticated)
		return "", false
	}
	return userID, true
}
