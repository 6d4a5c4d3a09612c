package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	BackendCode string `json:"backend_code,omitempty"`
	Details     any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	RespondAPIError(c, status, APIError{Code: code, Message: msg})
}

func RespondAPIError(c *gin.Context, status int, apiErr APIError) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: apiErr})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
