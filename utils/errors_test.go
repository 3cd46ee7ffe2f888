// File: /utils/errors_test.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("liking post: %w", NewBadRequest("Post already liked"))

	appErr := AsAppError(wrapped)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, ErrTypeBadRequest, appErr.Type)
	assert.Equal(t, "Post already liked", appErr.Message)

	internal := AsAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, ErrTypeInternal, internal.Type)
}

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(NewNotFound("x"), ErrTypeNotFound))
	assert.True(t, IsErrorType(fmt.Errorf("wrapped: %w", NewConflict("x")), ErrTypeConflict))
	assert.False(t, IsErrorType(NewForbidden("x"), ErrTypeNotFound))
	assert.False(t, IsErrorType(errors.New("plain"), ErrTypeInternal))
}
