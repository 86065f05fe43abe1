package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/marketlens-backend/internal/requestdata"
	"github.com/yungbote/marketlens-backend/internal/services"
)

// APIResponse is the envelope every endpoint returns. RequestID echoes the
// correlation token minted by the request-id middleware.
type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		return ""
	}
	return rd.RequestID
}

func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:    "success",
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:    "success",
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func RespondError(c *gin.Context, status int, message string, err error) {
	if message == "" && err != nil {
		message = err.Error()
	}
	resp := APIResponse{
		Status:    "error",
		Message:   message,
		RequestID: requestID(c),
	}
	if err != nil && err.Error() != message {
		resp.Errors = []string{err.Error()}
	}
	c.JSON(status, resp)
}

// RespondServiceError translates service sentinel errors into HTTP statuses.
func RespondServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		RespondError(c, http.StatusBadRequest, message, err)
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrUserNotFound):
		RespondError(c, http.StatusNotFound, message, err)
	case errors.Is(err, services.ErrUserAlreadyExists):
		RespondError(c, http.StatusConflict, message, err)
	default:
		RespondError(c, http.StatusInternalServerError, message, err)
	}
}
