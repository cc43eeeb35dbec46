package cache

import (
	"time"
)

// TimeUntilNextMidnightUTC returns the duration until the next UTC
// midnight, used as the cache TTL so dataset reads expire when the
// daily ingest window comes around.
func TimeUntilNextMidnightUTC() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}
