// File: /repositories/like_repository_test.go
package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLikeRepository_AddIsIdempotent(t *testing.T) {
	repo := NewLikeRepository()

	assert.True(t, repo.Add(0, 1, time.Now()))
	assert.False(t, repo.Add(0, 1, time.Now()))
	assert.True(t, repo.Add(0, 2, time.Now()))
	assert.True(t, repo.Add(1, 1, time.Now()))

	assert.Equal(t, 2, repo.CountByPost(0))
	assert.Equal(t, 3, repo.Count())
	assert.True(t, repo.Exists(0, 1))
}

func TestLikeRepository_Remove(t *testing.T) {
	repo := NewLikeRepository()
	repo.Add(0, 1, time.Now())

	assert.True(t, repo.Remove(0, 1))
	assert.False(t, repo.Remove(0, 1))
	assert.False(t, repo.Exists(0, 1))
	assert.Equal(t, 0, repo.CountByPost(0))
}

func TestLikeRepository_ByUserAndPost(t *testing.T) {
	repo := NewLikeRepository()
	repo.Add(0, 1, time.Now())
	repo.Add(1, 1, time.Now())
	repo.Add(1, 2, time.Now())

	likes := repo.ListByUser(1)
	assert.Len(t, likes, 2)

	assert.Equal(t, 2, repo.DeleteByPost(1))
	assert.Equal(t, 1, repo.Count())
	assert.Empty(t, repo.ListByUser(2))
}
