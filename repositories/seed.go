// File: /repositories/seed.go
package repositories

import (
	"blog-api/models"
	"time"
)

func seedTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSeed returns the demo data loaded when SEED_DATA is enabled.
func DefaultSeed() *models.Seed {
	return &models.Seed{
		Users: []models.SeedUser{
			{Email: "test@example.com", Password: "Test1234!", Nickname: "test", ProfileImageURL: "https://example.com/avatars/test.png"},
			{Email: "user@test.com", Password: "Valid123!", Nickname: "user", ProfileImageURL: "https://example.com/avatars/user.png"},
			{Email: "admin@company.co.kr", Password: "Admin2024@", Nickname: "admin", ProfileImageURL: "https://example.com/avatars/admin.png"},
			{Email: "test.user+tag@example.org", Password: "MyP@ssw0rd", Nickname: "foo", ProfileImageURL: "https://example.com/avatars/foo.png"},
		},
		Posts: []models.SeedPost{
			{
				Title:     "Getting started with gin",
				Content:   "A first look at routing, binding and middleware in gin.",
				PosterID:  0,
				ImageURLs: []string{"https://example.com/images/gin1.jpg", "https://example.com/images/gin2.jpg"},
				ViewCount: 234,
				PostedAt:  seedTime("2024-01-15T10:30:00"),
			},
			{
				Title:     "A tour of Go generics",
				Content:   "Type parameters, constraints and when not to use them.",
				PosterID:  1,
				ImageURLs: []string{"https://example.com/images/generics.png"},
				ViewCount: 567,
				PostedAt:  seedTime("2024-01-20T14:45:00"),
			},
			{
				Title:     "REST API design notes",
				Content:   "Resource naming, status codes and error bodies.",
				PosterID:  2,
				ImageURLs: []string{},
				ViewCount: 1203,
				PostedAt:  seedTime("2024-02-01T09:00:00"),
			},
			{
				Title:     "Validating request payloads",
				Content:   "Binding tags, custom validators and readable 422 responses.",
				PosterID:  3,
				ImageURLs: []string{"https://example.com/images/validator.svg", "https://example.com/images/validation.jpg"},
				ViewCount: 456,
				PostedAt:  seedTime("2024-02-10T16:20:00"),
			},
			{
				Title:     "Goroutines and channels",
				Content:   "Structuring concurrent work without leaking goroutines.",
				PosterID:  0,
				ImageURLs: []string{"https://example.com/images/goroutines.png"},
				ViewCount: 892,
				PostedAt:  seedTime("2024-02-15T11:30:00"),
			},
			{
				Title:     "Shipping a Go service in Docker",
				Content:   "Multi-stage builds, distroless images and health checks.",
				PosterID:  2,
				ImageURLs: []string{"https://example.com/images/docker.jpg", "https://example.com/images/container.png", "https://example.com/images/deploy.jpg"},
				ViewCount: 1567,
				PostedAt:  seedTime("2024-02-20T13:45:00"),
			},
			{
				Title:     "Token based auth, carefully",
				Content:   "Signing, expiry and rotation of bearer tokens.",
				PosterID:  1,
				ImageURLs: []string{"https://example.com/images/token_flow.png"},
				ViewCount: 1089,
				PostedAt:  seedTime("2024-03-01T10:00:00"),
			},
			{
				Title:     "Working with databases in Go",
				Content:   "database/sql, connection pools and migrations.",
				PosterID:  3,
				ImageURLs: []string{"https://example.com/images/sql.jpg", "https://example.com/images/schema.png"},
				ViewCount: 723,
				PostedAt:  seedTime("2024-03-05T15:30:00"),
			},
			{
				Title:     "Testing HTTP handlers",
				Content:   "httptest recorders, table tests and testify.",
				PosterID:  0,
				ImageURLs: []string{},
				ViewCount: 445,
				PostedAt:  seedTime("2024-03-10T17:15:00"),
			},
			{
				Title:     "Profiling a slow endpoint",
				Content:   "pprof, benchmarks and the allocations that mattered.",
				PosterID:  2,
				ImageURLs: []string{"https://example.com/images/pprof.jpg", "https://example.com/images/flame.png"},
				ViewCount: 1456,
				PostedAt:  seedTime("2024-03-15T12:00:00"),
			},
		},
		Comments: []models.SeedComment{
			{PostID: 0, UserID: 1, Text: "Clear intro, got my first routes up in minutes.", CommentedAt: seedTime("2024-01-16T09:15:00")},
			{PostID: 1, UserID: 2, Text: "Constraints finally clicked for me after this.", CommentedAt: seedTime("2024-01-21T11:30:00")},
			{PostID: 2, UserID: 3, Text: "Bookmarked the status code table.", CommentedAt: seedTime("2024-02-02T14:20:00")},
			{PostID: 3, UserID: 0, Text: "The 422 examples are exactly what our frontend needed.", CommentedAt: seedTime("2024-02-11T10:45:00")},
			{PostID: 4, UserID: 1, Text: "Nice explanation of the done channel pattern.", CommentedAt: seedTime("2024-02-16T15:00:00")},
			{PostID: 5, UserID: 3, Text: "Followed along and deployed on the first try.", CommentedAt: seedTime("2024-02-21T09:30:00")},
			{PostID: 6, UserID: 0, Text: "Going to apply the rotation section this week.", CommentedAt: seedTime("2024-03-02T16:45:00")},
			{PostID: 7, UserID: 2, Text: "Looking forward to the follow-up on transactions.", CommentedAt: seedTime("2024-03-06T12:00:00")},
			{PostID: 0, UserID: 3, Text: "This was my starting point too, thanks!", CommentedAt: seedTime("2024-01-17T14:30:00")},
			{PostID: 9, UserID: 1, Text: "The allocation section saved us a lot of latency.", CommentedAt: seedTime("2024-03-16T10:15:00")},
		},
		Likes: []models.SeedLike{
			{PostID: 0, UserID: 1},
			{PostID: 0, UserID: 2},
			{PostID: 1, UserID: 0},
			{PostID: 2, UserID: 3},
			{PostID: 5, UserID: 0},
			{PostID: 5, UserID: 1},
			{PostID: 6, UserID: 2},
			{PostID: 9, UserID: 1},
			{PostID: 9, UserID: 3},
			{PostID: 3, UserID: 0},
		},
	}
}
