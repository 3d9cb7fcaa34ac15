package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ReportDeduper suppresses duplicate maintenance reports backed by Redis.
// Key format: report:<email>:<normalized topic>
type ReportDeduper struct {
	client *redis.Client
}

// NewReportDeduper creates a ReportDeduper wrapping the given Redis client.
func NewReportDeduper(client *redis.Client) *ReportDeduper {
	return &ReportDeduper{client: client}
}

// IsDuplicate reports whether the same resident already submitted this topic
// within the dedup window.
func (d *ReportDeduper) IsDuplicate(ctx context.Context, email, topic string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, topic)).Result()
	if err != nil {
		return false, fmt.Errorf("report dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this report has been accepted (expires after dedupTTL).
func (d *ReportDeduper) Mark(ctx context.Context, email, topic string) error {
	return d.client.Set(ctx, d.key(email, topic), "1", dedupTTL).Err()
}

func (d *ReportDeduper) key(email, topic string) string {
	return fmt.Sprintf("report:%s:%s", email, strings.ToLower(strings.TrimSpace(topic)))
}
