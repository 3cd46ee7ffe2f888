// File: /controllers/user_controller.go
package controllers

import (
	"blog-api/services"
	"blog-api/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService     *services.UserService
	postService     *services.PostService
	defaultImageURL string
}

func NewUserController(userService *services.UserService, postService *services.PostService, defaultImageURL string) *UserController {
	return &UserController{
		userService:     userService,
		postService:     postService,
		defaultImageURL: defaultImageURL,
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	ImageURL string `json:"image_url"`
}

func (r SignupRequest) Validate() *utils.FieldError {
	return firstFieldError(checkEmail(r.Email), checkPassword(r.Password), checkNickname(r.Nickname))
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() *utils.FieldError {
	return firstFieldError(checkEmail(r.Email), checkPassword(r.Password))
}

type EditProfileRequest struct {
	Nickname string  `json:"nickname" binding:"required"`
	ImageURL *string `json:"image_url"`
}

func (r EditProfileRequest) Validate() *utils.FieldError {
	return checkNickname(r.Nickname)
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func (r ChangePasswordRequest) Validate() *utils.FieldError {
	return checkPassword(r.Password)
}

func (uc *UserController) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindRequest(c, &req) {
		return
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = uc.defaultImageURL
	}

	userID, err := uc.userService.Signup(req.Email, req.Password, req.Nickname, imageURL)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Message: "signup_success",
		UserID:  userID,
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindRequest(c, &req) {
		return
	}

	user, err := uc.userService.Login(req.Email, req.Password)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "login_success", user)
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := uc.userService.GetProfile(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EditProfileRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := uc.userService.UpdateProfile(userID, req.Nickname, req.ImageURL); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile_update_success"})
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := uc.userService.ChangePassword(userID, req.Password); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password_change_success"})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(userID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user_delete_success"})
}

func (uc *UserController) GetUserPosts(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	posts, err := uc.postService.ListByPoster(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "get_user_posts_success", posts)
}
