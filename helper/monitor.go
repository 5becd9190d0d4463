package helper

import (
	"context"
	"log"
	"time"

	"campus_market/cache"
	"campus_market/upstream"

	"github.com/go-co-op/gocron/v2"
)

var monitorScheduler gocron.Scheduler

// CheckUpstreamHealth probes the core API once and records the verdict in
// redis for /health to report.
func CheckUpstreamHealth(client *upstream.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state := "ok"
	if err := client.Health(ctx); err != nil {
		log.Printf("[CRON] upstream health check failed: %v", err)
		state = "down"
	}
	cache.SetUpstreamHealth(ctx, state, 3*time.Minute)
}

func StartUpstreamMonitor(client *upstream.Client) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Failed to create upstream monitor scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() { CheckUpstreamHealth(client) }),
	)
	if err != nil {
		log.Printf("Failed to schedule upstream health check: %v", err)
		return
	}

	monitorScheduler = s
	s.Start()
	log.Println("Upstream monitor started (every 1 minute)")
}

func StopUpstreamMonitor() {
	if monitorScheduler != nil {
		if err := monitorScheduler.Shutdown(); err != nil {
			log.Printf("Failed to stop upstream monitor: %v", err)
		}
	}
}
