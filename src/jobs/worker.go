package jobs

import (
	"log"

	"Backend-GovSeva/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker runs the background task server. Call from main in a
// goroutine; returns immediately when Redis is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExpireJobNotification, HandleExpireJobTask)
	mux.HandleFunc(TypeNewJobAlert, HandleNewJobAlertTask)

	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Worker stopped:", err)
	}
}
