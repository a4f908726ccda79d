package service

import (
	"context"
	"math"
	"strings"
	"time"

	"guestbook/internal/repository"
)

// RateLimiter measures how long ago a source last posted.
type RateLimiter struct {
	entries   repository.EntryRepository
	allowList map[string]struct{}
}

func NewRateLimiter(entries repository.EntryRepository, allowList []string) *RateLimiter {
	allowed := make(map[string]struct{}, len(allowList))
	for _, ip := range allowList {
		ip = strings.ToLower(strings.TrimSpace(ip))
		if ip != "" {
			allowed[ip] = struct{}{}
		}
	}
	return &RateLimiter{entries: entries, allowList: allowed}
}

// Allowed reports whether ip is exempt from the posting interval.
func (r *RateLimiter) Allowed(ip string) bool {
	_, ok := r.allowList[strings.ToLower(strings.TrimSpace(ip))]
	return ok
}

// HoursSinceLastPost returns the absolute number of hours between now and
// the most recent entry from ip. It is +Inf when ip is allow-listed or has
// never posted. Store errors are returned unchanged.
func (r *RateLimiter) HoursSinceLastPost(ctx context.Context, ip string, now time.Time) (float64, error) {
	if r.Allowed(ip) {
		return math.Inf(1), nil
	}
	last, err := r.entries.LastPostAt(ctx, ip)
	if err != nil {
		return 0, err
	}
	if last == nil {
		return math.Inf(1), nil
	}
	return math.Abs(now.Sub(*last).Hours()), nil
}
