package contracts

import (
	"context"
	"time"
)

type ApplyResourceLimiterInput struct {
	// ResourceName is the limited entity, e.g. a patient email.
	ResourceName string
	// LimiterGroupName namespaces the counter key.
	LimiterGroupName string
	Window           time.Duration
	// MaxQuota of zero or less disables the limiter.
	MaxQuota int
	// NowUTC defaults to the current time when zero.
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error)
}
