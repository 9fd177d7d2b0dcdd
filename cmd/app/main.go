package main

import (
	"context"

	"innsync/config"
	"innsync/di"
	"innsync/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker := di.InitializeSyncWorker()
	worker.Start(context.Background())

	http := di.InitializeService()
	http.Serve()
}
