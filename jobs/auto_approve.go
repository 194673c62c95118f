package jobs

import (
	"os"
	"strconv"
	"time"

	"backoffice/services"

	"github.com/rs/zerolog/log"
)

// StartAutoApproveScheduler runs the opt-in auto-approval sweep. By
// default records below the threshold are only hidden from the review
// queue; the mutation itself happens only when AUTO_APPROVE_ENABLED is
// set.
func StartAutoApproveScheduler() {
	enabled, _ := strconv.ParseBool(os.Getenv("AUTO_APPROVE_ENABLED"))
	if !enabled {
		log.Info().Msg("Auto-approve scheduler disabled")
		return
	}

	interval := time.Minute
	if raw := os.Getenv("AUTO_APPROVE_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			interval = parsed
		}
	}

	ticker := time.NewTicker(interval)
	go func() {
		for {
			<-ticker.C
			approved, err := services.AutoApproveBelowThreshold()
			if err != nil {
				log.Error().Err(err).Msg("Auto-approve sweep failed")
				continue
			}
			if approved > 0 {
				log.Info().Int64("approved", approved).Msg("Auto-approved below-threshold records")
			}
		}
	}()
}
