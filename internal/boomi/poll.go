package boomi

import (
	"context"
	"errors"
	"time"
)

// Polling bounds mirror the platform's operational defaults: checks start
// one second apart and back off to a minute, for up to a day of waiting.
const (
	DefaultPollInterval    = 1 * time.Second
	DefaultMaxPollInterval = 60 * time.Second
	DefaultMaxPollAttempts = 1440
	DefaultMaxPollErrors   = 3
)

// PollConfig bounds a wait for execution completion.
type PollConfig struct {
	// Interval is the initial delay between status checks. It doubles
	// after every check, capped at MaxInterval.
	Interval    time.Duration
	MaxInterval time.Duration
	// MaxAttempts is the maximum number of status checks before the wait
	// gives up with a *PollTimeoutError.
	MaxAttempts int
	// MaxErrors is the number of transport failures tolerated across the
	// whole wait before it fails with a *PollTransportError.
	MaxErrors int
}

// DefaultPollConfig returns the standard polling bounds.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval:    DefaultPollInterval,
		MaxInterval: DefaultMaxPollInterval,
		MaxAttempts: DefaultMaxPollAttempts,
		MaxErrors:   DefaultMaxPollErrors,
	}
}

func (cfg PollConfig) withDefaults() PollConfig {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = DefaultMaxPollInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxPollAttempts
	}
	if cfg.MaxErrors <= 0 {
		cfg.MaxErrors = DefaultMaxPollErrors
	}
	return cfg
}

// AwaitCompletion polls the execution status until it reaches a terminal
// state, making exactly one status check per attempt. Transport errors are
// tolerated up to cfg.MaxErrors and never mistaken for the run itself
// failing; exhausting cfg.MaxAttempts yields a *PollTimeoutError, which says
// the wait gave up, not that the run failed. Cancelling ctx stops the wait
// between attempts.
func (c *Client) AwaitCompletion(ctx context.Context, requestID string, cfg PollConfig) (*StatusRecord, error) {
	cfg = cfg.withDefaults()

	start := time.Now()
	interval := cfg.Interval
	transportErrors := 0

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		record, err := c.ExecutionStatus(ctx, requestID)
		switch {
		case err != nil:
			var te *TransportError
			if !errors.As(err, &te) {
				return nil, err
			}
			transportErrors++
			c.logger.WarnContext(ctx, "status check failed", "request_id", requestID, "attempt", attempt, "error", err)
			if transportErrors >= cfg.MaxErrors {
				return nil, &PollTransportError{Errors: transportErrors, Last: err}
			}
		case record.Status.Terminal():
			return record, nil
		default:
			c.logger.DebugContext(ctx, "execution not finished", "request_id", requestID, "status", string(record.Status), "attempt", attempt)
		}

		if attempt == cfg.MaxAttempts {
			break
		}
		if err := sleepContext(ctx, interval); err != nil {
			return nil, err
		}
		interval = min(interval*2, cfg.MaxInterval)
	}

	return nil, &PollTimeoutError{Attempts: cfg.MaxAttempts, Elapsed: time.Since(start)}
}

// sleepContext pauses for d, returning early if ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
