package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/di"
	"innsync/shared/logger"
)

// Runs one booking sync synchronously. Intended for cron and operator use;
// the HTTP trigger endpoint covers the queued path.
func main() {
	since := flag.String("since", "", "RFC3339 cursor; defaults to the configured window")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeSyncService()

	summary, err := service.Run(context.Background(), *since)
	if err != nil {
		log.Error().Err(err).Msg("Sync run failed")
		os.Exit(1)
	}

	log.Info().
		Str("run_id", summary.RunID).
		Str("since", summary.Since).
		Int("discovered", summary.Discovered).
		Int("synced", summary.Synced).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Sync run finished")
}
