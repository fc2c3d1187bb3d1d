package services

import (
	"time"

	"github.com/rs/zerolog"
)

// StartRefreshScheduler periodically re-runs the given refresh function in
// the background. Used to pick up ledger rows ingested out of band, for
// example by the ingest command writing to the same database file.
func StartRefreshScheduler(log zerolog.Logger, interval time.Duration, refresh func() error) {
	if interval <= 0 {
		return
	}

	log.Info().Dur("interval", interval).Msg("Starting ledger refresh scheduler")

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := refresh(); err != nil {
				log.Error().Err(err).Msg("Scheduled ledger refresh failed")
				continue
			}
			log.Debug().Msg("Scheduled ledger refresh completed")
		}
	}()
}
