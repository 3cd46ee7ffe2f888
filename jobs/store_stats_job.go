// File: /jobs/store_stats_job.go
package jobs

import (
	"blog-api/metrics"
	"blog-api/repositories"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// StoreStatsJob periodically publishes collection sizes as Prometheus gauges
type StoreStatsJob struct {
	store  *repositories.Store
	log    logrus.FieldLogger
	ticker *time.Ticker
	done   chan bool
	stop   sync.Once
}

func NewStoreStatsJob(store *repositories.Store, interval time.Duration, log logrus.FieldLogger) *StoreStatsJob {
	return &StoreStatsJob{
		store:  store,
		log:    log,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the job
func (j *StoreStatsJob) Start() {
	j.log.Info("Store stats job started")

	go func() {
		// Run immediately on start
		j.collect()

		for {
			select {
			case <-j.ticker.C:
				j.collect()
			case <-j.done:
				j.log.Info("Store stats job stopped")
				return
			}
		}
	}()
}

// Stop stops the job. Calls after the first are no-ops.
func (j *StoreStatsJob) Stop() {
	j.stop.Do(func() {
		j.ticker.Stop()
		close(j.done)
	})
}

func (j *StoreStatsJob) collect() repositories.Stats {
	stats := j.store.Stats()

	metrics.SetStoreRecords("users", stats.Users)
	metrics.SetStoreRecords("posts", stats.Posts)
	metrics.SetStoreRecords("comments", stats.Comments)
	metrics.SetStoreRecords("likes", stats.Likes)

	j.log.WithFields(logrus.Fields{
		"users":    stats.Users,
		"posts":    stats.Posts,
		"comments": stats.Comments,
		"likes":    stats.Likes,
	}).Debug("Store stats collected")
	return stats
}
