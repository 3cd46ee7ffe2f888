// File: /services/user_service_test.go
package services

import (
	"blog-api/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SignupThenLogin(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.users.Signup("alice@example.com", "Test1234!", "alice", "https://example.com/alice.png")
	require.NoError(t, err)

	user, err := env.users.Login("alice@example.com", "Test1234!")
	require.NoError(t, err)
	assert.Equal(t, id, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Nickname)
	assert.Equal(t, "https://example.com/alice.png", user.ProfileImageURL)
}

func TestUserService_LoginFailure(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice@example.com", "alice")

	_, err := env.users.Login("alice@example.com", "Wrong1234!")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeForbidden))

	_, err = env.users.Login("nobody@example.com", "Test1234!")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeForbidden))
}

func TestUserService_SignupConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice@example.com", "alice")

	_, err := env.users.Signup("alice@example.com", "Test1234!", "someone", "img")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeConflict), "duplicate email")

	_, err = env.users.Signup("other@example.com", "Test1234!", "alice", "img")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeConflict), "duplicate nickname")

	assert.Equal(t, 1, env.store.Users.Count())
}

func TestUserService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com", "alice")
	env.signup(t, "bob@example.com", "bob")

	err := env.users.UpdateProfile(alice, "bob", nil)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeConflict))

	// own nickname, image omitted
	require.NoError(t, env.users.UpdateProfile(alice, "alice", nil))
	profile, err := env.users.GetProfile(alice)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/alice.png", profile.ImageURL)

	image := "https://example.com/new.png"
	require.NoError(t, env.users.UpdateProfile(alice, "alicia", &image))
	profile, err = env.users.GetProfile(alice)
	require.NoError(t, err)
	assert.Equal(t, "alicia", profile.Nickname)
	assert.Equal(t, image, profile.ImageURL)
	assert.Equal(t, "alice@example.com", profile.Email)

	err = env.users.UpdateProfile(99, "ghost", nil)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com", "alice")

	require.NoError(t, env.users.ChangePassword(alice, "Newpass1!"))

	_, err := env.users.Login("alice@example.com", "Test1234!")
	assert.Error(t, err)
	_, err = env.users.Login("alice@example.com", "Newpass1!")
	assert.NoError(t, err)

	err = env.users.ChangePassword(99, "Newpass1!")
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))
}

func TestUserService_DeleteUserCascades(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com", "alice")
	bob := env.signup(t, "bob@example.com", "bob")

	bobPost := env.post(t, bob, "bob's post")
	alicePost := env.post(t, alice, "alice's post")

	require.NoError(t, env.posts.Like(bobPost, alice))
	require.NoError(t, env.posts.Like(alicePost, bob))
	_, err := env.comments.Write(bobPost, alice, "nice")
	require.NoError(t, err)
	_, err = env.comments.Write(alicePost, bob, "thanks")
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(alice))

	_, err = env.users.GetProfile(alice)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))

	post, err := env.store.Posts.FindByID(bobPost)
	require.NoError(t, err)
	assert.Equal(t, 0, post.LikeCount)
	assert.Empty(t, env.store.Comments.ListByPost(bobPost))

	_, err = env.store.Posts.FindByID(alicePost)
	assert.Error(t, err)
	assert.Equal(t, 0, env.store.Likes.Count())
	assert.Equal(t, 0, env.store.Comments.Count())

	err = env.users.DeleteUser(alice)
	assert.True(t, utils.IsErrorType(err, utils.ErrTypeNotFound))
}
