package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
)

const (
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodeDBError        = "DB_ERROR"
	CodeUnavailable    = "UNAVAILABLE"
	CodeInternal       = "INTERNAL_ERROR"
)

// FromError maps an aggregate error onto its HTTP status and wire body.
// Internal failures never expose their message.
func FromError(err error) (int, APIError) {
	aggErr, ok := domainagg.AsError(err)
	if !ok {
		return http.StatusInternalServerError, APIError{Code: CodeInternal, Message: "internal error"}
	}
	body := APIError{
		Code:    aggErr.Reason,
		Message: aggErr.Message,
		Details: aggErr.Details,
	}
	switch aggErr.Code {
	case domainagg.CodeValidation:
		if body.Code == "" {
			body.Code = CodeInvalidPayload
		}
		return http.StatusBadRequest, body
	case domainagg.CodeInvariantViolation:
		if body.Code == "" {
			body.Code = "INVARIANT_VIOLATION"
		}
		return http.StatusConflict, body
	case domainagg.CodeNotFound:
		if body.Code == "" {
			body.Code = domainagg.ReasonNotFound
		}
		return http.StatusNotFound, body
	case domainagg.CodeStorageConflict:
		return http.StatusConflict, APIError{
			Code:        CodeDBError,
			Message:     "storage conflict",
			BackendCode: aggErr.BackendCode,
		}
	case domainagg.CodeRetryable:
		return http.StatusServiceUnavailable, APIError{Code: CodeUnavailable, Message: "temporarily unavailable, retry"}
	default:
		return http.StatusInternalServerError, APIError{Code: CodeInternal, Message: "internal error"}
	}
}

// RespondFromError writes the mapped error and records err on the gin
// context for the request logger.
func RespondFromError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, body := FromError(err)
	RespondAPIError(c, status, body)
}
