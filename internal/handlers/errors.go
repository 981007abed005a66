package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/fatoumatandjim/SFB-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

const internalMessage = "An internal error occurred"

// errorStatus maps an application error onto an HTTP status and a response body.
// Errors outside the known categories are reported as INTERNAL without their text.
func errorStatus(err error) (int, dto.ErrorBody) {
	var status int
	var code string
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, apperrors.ErrForbidden):
		status, code = http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, apperrors.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperrors.ErrDuplicate):
		status, code = http.StatusConflict, "DUPLICATE"
	case errors.Is(err, apperrors.ErrBusinessRule):
		status, code = http.StatusConflict, "BUSINESS_RULE"
	default:
		return http.StatusInternalServerError, dto.ErrorBody{Code: "INTERNAL", Message: internalMessage}
	}

	var coded *apperrors.CodedError
	if errors.As(err, &coded) {
		code = coded.Code
	}
	return status, dto.ErrorBody{Code: code, Message: err.Error()}
}

// errorBody is errorStatus without the status, for batch results.
func errorBody(err error) dto.ErrorBody {
	_, body := errorStatus(err)
	return body
}

// respondWithError writes the error response and logs it at a level matching its status.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, body := errorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Refused to "+action, slog.String("code", body.Code), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Error: body, Message: body.Message})
}

// respondBindError reports a malformed or invalid request body or query.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	msg := "Invalid request format: " + err.Error()
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   dto.ErrorBody{Code: "VALIDATION_ERROR", Message: msg},
		Message: msg,
	})
}

// actorOrAbort returns the authenticated caller, answering 401 when there is none.
func actorOrAbort(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   dto.ErrorBody{Code: "UNAUTHORIZED", Message: "Unauthorized"},
			Message: "Unauthorized",
		})
		return domain.Actor{}, false
	}
	return actor, true
}
