// File: /services/comment_service_test.go
package services

import (
	"blog-api/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_WriteAndList(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com", "alice")
	bob := env.signup(t, "bob@example.com", "bob")
	postID := env.post(t, alice, "hello")

	first, err := env.comments.Write(postID, bob, "one")
	require.NoError(t, err)
	second, err := env.comments.Write(postID, alice, "two")
	require.NoError(t, err)
	assert.Equal(t, first+1, second)

	comments, err := env.comments.List(postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "bob", comments[0].CommenterNickname)
	assert.Equal(t, "https://example.com/bob.png", comments[0].CommenterImage)
	assert.Equal(t, fixedNow, comments[0].CommentedAt)
	assert.Equal(t, "two", comments[1].Text)

	_, err = env.comments.Write(99, bob, "nowhere")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))
	_, err = env.comments.Write(postID, 99, "ghost")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))

	_, err = env.comments.List(99)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))
}

func TestCommentService_EditMustMatchPost(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com", "alice")
	postID := env.post(t, alice, "hello")
	otherPost := env.post(t, alice, "other")
	commentID, err := env.comments.Write(postID, alice, "before")
	require.NoError(t, err)

	err = env.comments.Edit(otherPost, commentID, alice, "wrong post")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))

	err = env.comments.Edit(postID, 42, alice, "missing")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))

	later := fixedNow.Add(time.Hour)
	env.comments.now = func() time.Time { return later }
	require.NoError(t, env.comments.Edit(postID, commentID, alice, "after"))

	comment, err := env.store.Comments.FindByID(commentID)
	require.NoError(t, err)
	assert.Equal(t, "after", comment.Text)
	assert.Equal(t, later, comment.CommentedAt)
}

func TestCommentService_Delete(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com", "alice")
	postID := env.post(t, alice, "hello")
	otherPost := env.post(t, alice, "other")
	commentID, err := env.comments.Write(postID, alice, "bye")
	require.NoError(t, err)

	err = env.comments.Delete(otherPost, commentID, alice)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))

	require.NoError(t, env.comments.Delete(postID, commentID, alice))
	assert.Equal(t, 0, env.store.Comments.Count())

	err = env.comments.Delete(postID, commentID, alice)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))
}
