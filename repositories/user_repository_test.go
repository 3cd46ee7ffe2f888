// File: /repositories/user_repository_test.go
package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_IDsAreNeverReused(t *testing.T) {
	repo := NewUserRepository()

	assert.Equal(t, 0, repo.Add("a@example.com", "Test1234!", "a", "img"))
	assert.Equal(t, 1, repo.Add("b@example.com", "Test1234!", "b", "img"))

	require.True(t, repo.DeleteByID(1))
	assert.False(t, repo.DeleteByID(1))

	assert.Equal(t, 2, repo.Add("c@example.com", "Test1234!", "c", "img"))
	assert.Equal(t, 2, repo.Count())
}

func TestUserRepository_Find(t *testing.T) {
	repo := NewUserRepository()
	id := repo.Add("a@example.com", "Test1234!", "alice", "img")

	user, err := repo.FindByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.UserID)

	user, err = repo.FindByNickname("alice")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.FindByNickname("bob")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	id := repo.Add("a@example.com", "Test1234!", "alice", "img")

	user, err := repo.FindByID(id)
	require.NoError(t, err)
	user.Nickname = "mallory"

	stored, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Nickname)
}

func TestUserRepository_Authenticate(t *testing.T) {
	repo := NewUserRepository()
	repo.Add("a@example.com", "Test1234!", "alice", "img")

	user, err := repo.Authenticate("a@example.com", "Test1234!")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Nickname)

	_, err = repo.Authenticate("a@example.com", "Wrong1234!")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.Authenticate("nobody@example.com", "Test1234!")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository()
	id := repo.Add("a@example.com", "Test1234!", "alice", "img")

	require.NoError(t, repo.UpdateProfile(id, "alicia", "img2"))
	require.NoError(t, repo.UpdatePassword(id, "Other1234!"))

	user, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Nickname)
	assert.Equal(t, "img2", user.ProfileImageURL)
	assert.Equal(t, "Other1234!", user.Password)

	assert.ErrorIs(t, repo.UpdateProfile(99, "x", "y"), ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdatePassword(99, "x"), ErrRecordNotFound)
}
