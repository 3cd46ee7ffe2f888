// File: /repositories/store_test.go
package repositories

import (
	"blog-api/models"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Empty(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := NewStore(nil, log)

	assert.Equal(t, Stats{}, store.Stats())
}

func TestNewStore_DefaultSeed(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := NewStore(DefaultSeed(), log)

	assert.Equal(t, Stats{Users: 4, Posts: 10, Comments: 10, Likes: 10}, store.Stats())

	user, err := store.Users.Authenticate("test@example.com", "Test1234!")
	require.NoError(t, err)
	assert.Equal(t, 0, user.UserID)

	// like counts come from like rows
	posts, _ := store.Posts.List(0, 100)
	for _, post := range posts {
		assert.Equal(t, store.Likes.CountByPost(post.PostID), post.LikeCount, "post %d", post.PostID)
	}

	first, err := store.Posts.FindByID(0)
	require.NoError(t, err)
	assert.Equal(t, 2, first.LikeCount)
	assert.Equal(t, 234, first.ViewCount)
	assert.Len(t, store.Comments.ListByPost(0), 2)
}

func TestNewStore_SkipsDanglingSeedRows(t *testing.T) {
	log, hook := test.NewNullLogger()
	seed := &models.Seed{
		Users: []models.SeedUser{
			{Email: "a@example.com", Password: "Test1234!", Nickname: "a"},
			{Email: "a@example.com", Password: "Test1234!", Nickname: "b"},
		},
		Posts: []models.SeedPost{
			{Title: "ok", PosterID: 0},
			{Title: "orphan", PosterID: 1},
		},
		Comments: []models.SeedComment{
			{PostID: 0, UserID: 0, Text: "ok"},
			{PostID: 1, UserID: 0, Text: "on skipped post"},
		},
		Likes: []models.SeedLike{
			{PostID: 0, UserID: 0},
			{PostID: 0, UserID: 0},
			{PostID: 0, UserID: 5},
		},
	}

	store := NewStore(seed, log)

	assert.Equal(t, Stats{Users: 1, Posts: 1, Comments: 1, Likes: 1}, store.Stats())
	post, err := store.Posts.FindByID(0)
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikeCount)
	assert.False(t, post.PostedAt.IsZero())

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 5, warnings)
}

func TestStore_Atomically(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := NewStore(nil, log)
	sentinel := errors.New("stop")

	err := store.Atomically(func() error {
		store.Users.Add("a@example.com", "Test1234!", "a", "img")
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, store.Users.Count())
}
