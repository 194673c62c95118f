package services

import (
	"context"
	"encoding/json"
	"time"

	"backoffice/config"
	"backoffice/database"
	"backoffice/models"

	"github.com/rs/zerolog/log"
)

const (
	summaryKey = "records:status_counts"
	summaryTTL = 30 * time.Second
)

// StatusSummary returns the global per-status record counts for the
// dashboard tabs, served from redis when available.
func StatusSummary(ctx context.Context) (map[string]int64, error) {
	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, summaryKey).Result()
		if err == nil {
			var counts map[string]int64
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				return counts, nil
			}
		}
	}

	counts, err := countByStatus()
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		payload, _ := json.Marshal(counts)
		if err := config.RedisClient.Set(ctx, summaryKey, payload, summaryTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to cache status summary")
		}
	}
	return counts, nil
}

// InvalidateSummary drops the cached counts after a mutation.
func InvalidateSummary() {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(context.Background(), summaryKey).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate status summary")
	}
}

func countByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := database.DB.Model(&models.TransactionRecord{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
