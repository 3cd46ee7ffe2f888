// File: /controllers/comment_controller.go
package controllers

import (
	"blog-api/services"
	"blog-api/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type WriteCommentRequest struct {
	UserID  *int   `json:"user_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type WriteCommentResponse struct {
	Message   string `json:"message"`
	CommentID int    `json:"comment_id"`
}

type EditCommentRequest struct {
	CommentID *int   `json:"comment_id" binding:"required"`
	UserID    *int   `json:"user_id" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

type DeleteCommentRequest struct {
	CommentID *int `json:"comment_id" binding:"required"`
	UserID    *int `json:"user_id" binding:"required"`
}

func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := cc.commentService.List(postID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "get_comments_success", comments)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req WriteCommentRequest
	if !bindRequest(c, &req) {
		return
	}

	commentID, err := cc.commentService.Write(postID, *req.UserID, req.Comment)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, WriteCommentResponse{
		Message:   "comment_success",
		CommentID: commentID,
	})
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EditCommentRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := cc.commentService.Edit(postID, *req.CommentID, *req.UserID, req.Comment); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment_edit_success"})
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req DeleteCommentRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := cc.commentService.Delete(postID, *req.CommentID, *req.UserID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment_delete_success"})
}
