// File: /services/service.go
package services

import (
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/utils"
	"errors"
	"time"
)

const (
	msgUserNotFound    = "User not found"
	msgPostNotFound    = "Post not found"
	msgCommentNotFound = "Comment not found"
)

func findUser(store *repositories.Store, userID int) (*models.User, error) {
	user, err := store.Users.FindByID(userID)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, utils.NewNotFound(msgUserNotFound)
	}
	return user, err
}

func findPost(store *repositories.Store, postID int) (*models.Post, error) {
	post, err := store.Posts.FindByID(postID)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, utils.NewNotFound(msgPostNotFound)
	}
	return post, err
}

// findPostAndUser checks the post first, then the user, so a missing post
// wins when both are absent.
func findPostAndUser(store *repositories.Store, postID, userID int) (*models.Post, *models.User, error) {
	post, err := findPost(store, postID)
	if err != nil {
		return nil, nil, err
	}
	user, err := findUser(store, userID)
	if err != nil {
		return nil, nil, err
	}
	return post, user, nil
}

// deletePostCascade removes a post with its comments and likes. The caller
// holds the store lock.
func deletePostCascade(store *repositories.Store, postID int) (deleted bool, comments, likes int) {
	if !store.Posts.DeleteByID(postID) {
		return false, 0, 0
	}
	comments = store.Comments.DeleteByPost(postID)
	likes = store.Likes.DeleteByPost(postID)
	return true, comments, likes
}

type clock func() time.Time
