// File: /controllers/post_controller.go
package controllers

import (
	"blog-api/models"
	"blog-api/services"
	"blog-api/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type CreatePostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	PosterID  *int     `json:"poster_id" binding:"required"`
	ImageURLs []string `json:"image_url"`
}

type CreatePostResponse struct {
	Message   string `json:"message"`
	NewPostID int    `json:"new_post_id"`
}

type EditPostRequest struct {
	UserID    *int     `json:"user_id" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_url"`
}

// PostUserRequest is the body of delete, like and unlike: just the acting user.
type PostUserRequest struct {
	UserID *int `json:"user_id" binding:"required"`
}

// GetPosts returns one offset/limit page; next is -1 on the last page.
// Missing offset and limit are filled in by middleware.PaginationDefaults.
func (pc *PostController) GetPosts(c *gin.Context) {
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil {
		utils.SendValidationError(c, utils.QueryFieldError(utils.FieldErrIntParsing, "offset", "Input should be a valid integer"))
		return
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		utils.SendValidationError(c, utils.QueryFieldError(utils.FieldErrIntParsing, "limit", "Input should be a valid integer"))
		return
	}
	if offset < 0 {
		utils.SendValidationError(c, utils.QueryFieldError(utils.FieldErrValue, "offset", "Input should be greater than or equal to 0"))
		return
	}
	if limit < 1 {
		utils.SendValidationError(c, utils.QueryFieldError(utils.FieldErrValue, "limit", "Input should be greater than or equal to 1"))
		return
	}

	page := pc.postService.List(offset, limit)
	utils.SendCursorPage(c, "get_posts_success", page.Posts, page.Next)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if !bindRequest(c, &req) {
		return
	}

	postID, err := pc.postService.Create(req.Title, req.Content, *req.PosterID, req.ImageURLs)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatePostResponse{
		Message:   "post_success",
		NewPostID: postID,
	})
}

// PostDetailResponse flattens the post detail next to the message
type PostDetailResponse struct {
	Message string `json:"message"`
	*models.PostDetail
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := pc.postService.Get(postID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostDetailResponse{
		Message:    "get_post_success",
		PostDetail: detail,
	})
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EditPostRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := pc.postService.Edit(postID, *req.UserID, req.Title, req.Content, req.ImageURLs); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post_edit_success"})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PostUserRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := pc.postService.Delete(postID, *req.UserID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post_delete_success"})
}

func (pc *PostController) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PostUserRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := pc.postService.Like(postID, *req.UserID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "like_success"})
}

func (pc *PostController) UnlikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PostUserRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := pc.postService.Unlike(postID, *req.UserID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unlike_success"})
}
