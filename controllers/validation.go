// File: /controllers/validation.go
package controllers

import (
	"blog-api/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type validatable interface {
	Validate() *utils.FieldError
}

// bindRequest decodes the JSON body into req and, when req is validatable,
// runs its field checks. On failure it writes the 422 response and returns
// false.
func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.SendValidationError(c, utils.BindError(err))
		return false
	}
	if v, ok := req.(validatable); ok {
		if fieldErr := v.Validate(); fieldErr != nil {
			utils.SendValidationError(c, fieldErr)
			return false
		}
	}
	return true
}

// pathID parses an integer path parameter, writing a 422 when it is not one
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.SendValidationError(c, utils.PathFieldError(name, "Input should be a valid integer"))
		return 0, false
	}
	return id, true
}

func checkEmail(email string) *utils.FieldError {
	if !utils.IsValidEmail(email) {
		return utils.BodyFieldError("email", "Invalid email format")
	}
	return nil
}

func checkPassword(password string) *utils.FieldError {
	if !utils.IsValidPassword(password) {
		return utils.BodyFieldError("password", "Invalid password format")
	}
	return nil
}

func checkNickname(nickname string) *utils.FieldError {
	if !utils.IsValidNickname(nickname) {
		return utils.BodyFieldError("nickname", "Invalid nickname format")
	}
	return nil
}

// firstFieldError returns the first non-nil check result
func firstFieldError(checks ...*utils.FieldError) *utils.FieldError {
	for _, fieldErr := range checks {
		if fieldErr != nil {
			return fieldErr
		}
	}
	return nil
}
