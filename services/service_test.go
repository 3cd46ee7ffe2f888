// File: /services/service_test.go
package services

import (
	"blog-api/repositories"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store    *repositories.Store
	users    *UserService
	posts    *PostService
	comments *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := repositories.NewStore(nil, log)

	env := &testEnv{
		store:    store,
		users:    NewUserService(store, log),
		posts:    NewPostService(store, log),
		comments: NewCommentService(store, log),
	}
	env.posts.now = func() time.Time { return fixedNow }
	env.comments.now = func() time.Time { return fixedNow }
	return env
}

func (env *testEnv) signup(t *testing.T, email, nickname string) int {
	t.Helper()
	id, err := env.users.Signup(email, "Test1234!", nickname, "https://example.com/"+nickname+".png")
	require.NoError(t, err)
	return id
}

func (env *testEnv) post(t *testing.T, posterID int, title string) int {
	t.Helper()
	id, err := env.posts.Create(title, "content", posterID, []string{"https://example.com/a.png"})
	require.NoError(t, err)
	return id
}
