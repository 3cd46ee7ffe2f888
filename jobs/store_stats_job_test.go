// File: /jobs/store_stats_job_test.go
package jobs

import (
	"blog-api/metrics"
	"blog-api/repositories"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestStoreStatsJob_Collect(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := repositories.NewStore(repositories.DefaultSeed(), log)
	job := NewStoreStatsJob(store, time.Hour, log)
	defer job.ticker.Stop()

	stats := job.collect()
	assert.Equal(t, repositories.Stats{Users: 4, Posts: 10, Comments: 10, Likes: 10}, stats)

	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("users")))
	assert.Equal(t, float64(10), testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("posts")))
	assert.Equal(t, float64(10), testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("comments")))
	assert.Equal(t, float64(10), testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("likes")))

	store.Posts.DeleteByID(0)
	job.collect()
	assert.Equal(t, float64(9), testutil.ToFloat64(metrics.StoreRecords.WithLabelValues("posts")))
}

func TestStoreStatsJob_StartStop(t *testing.T) {
	log, hook := test.NewNullLogger()
	store := repositories.NewStore(nil, log)
	job := NewStoreStatsJob(store, 10*time.Millisecond, log)

	job.Start()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	again := make(chan struct{})
	go func() {
		job.Stop()
		close(again)
	}()
	select {
	case <-again:
	case <-time.After(time.Second):
		t.Fatal("second Stop blocked")
	}

	assert.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Message == "Store stats job stopped" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
