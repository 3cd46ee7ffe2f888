// File: /utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ValidationErrorMessage = "Invalid request data"

type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
	Code  int    `json:"code"`
}

type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Type    string   `json:"type"`
	Loc     []string `json:"loc"`
	Details string   `json:"details"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type CursorResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Next    int         `json:"next"`
}

func SendError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error: message,
		Type:  errType,
		Code:  status,
	})
}

// SendAppError writes err using its AppError status, or 500 for anything else.
func SendAppError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	if appErr.Status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	SendError(c, appErr.Status, appErr.Type, appErr.Message)
}

func SendValidationError(c *gin.Context, fieldErr *FieldError) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   ValidationErrorMessage,
		Type:    fieldErr.Type,
		Loc:     fieldErr.Loc,
		Details: fieldErr.Details,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCursorPage(c *gin.Context, message string, data interface{}, next int) {
	c.JSON(http.StatusOK, CursorResponse{
		Message: message,
		Data:    data,
		Next:    next,
	})
}
