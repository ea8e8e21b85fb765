package arcade

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Backoff returns the wait before attempt n+1 after attempt n failed:
// min(base * 2^n, ceiling).
func Backoff(n int, base, ceiling time.Duration) time.Duration {
	if n < 0 {
		n = 0
	}
	d := base
	for i := 0; i < n; i++ {
		if d >= ceiling {
			return ceiling
		}
		d *= 2
	}
	if d > ceiling {
		return ceiling
	}
	return d
}

// Executor runs a request through a Transport with bounded retries. It holds
// no per-call state and is safe for concurrent use.
type Executor struct {
	transport   Transport
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	jitter      float64
	sleep       Sleeper
	logger      *slog.Logger
}

// NewExecutor builds an executor from the retry fields of cfg.
func NewExecutor(transport Transport, cfg Config, sleep Sleeper, logger *slog.Logger) *Executor {
	cfg = cfg.WithDefaults()
	if sleep == nil {
		sleep = SleepContext
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		transport:   transport,
		maxAttempts: cfg.RetryAttempts,
		baseDelay:   cfg.RetryBaseDelay,
		maxDelay:    cfg.RetryMaxDelay,
		jitter:      cfg.RetryJitter,
		sleep:       sleep,
		logger:      logger,
	}
}

// MaxAttempts returns the attempt budget of a single Execute call.
func (e *Executor) MaxAttempts() int {
	return e.maxAttempts
}

// Execute sends req until it succeeds, fails terminally, or the attempt
// budget is spent. The returned error is always an *APIError; on exhaustion
// it is the last one observed.
func (e *Executor) Execute(ctx context.Context, req Request) (json.RawMessage, error) {
	var last *APIError
	for n := 0; n < e.maxAttempts; n++ {
		res := e.transport.Send(ctx, req)
		switch res.Outcome {
		case OutcomeSuccess:
			if n > 0 {
				e.logger.Debug("upstream request succeeded after retry", "url", req.URL, "attempts", n+1)
			}
			return res.Body, nil
		case OutcomeRetryable:
			last = res.Err
		default:
			return nil, res.Err
		}

		if n == e.maxAttempts-1 {
			break
		}

		delay := e.delay(n)
		e.logger.Debug("upstream request failed, retrying",
			"url", req.URL,
			"attempt", n+1,
			"max", e.maxAttempts,
			"status", last.StatusCode,
			"error", last.Code,
			"delay", delay)

		if err := e.sleep(ctx, delay); err != nil {
			canceled := newCanceledError(err)
			canceled.Details = last
			return nil, canceled
		}
	}

	e.logger.Warn("upstream request failed, retries exhausted",
		"url", req.URL,
		"attempts", e.maxAttempts,
		"status", last.StatusCode,
		"error", last.Code)
	return nil, last
}

func (e *Executor) delay(n int) time.Duration {
	d := Backoff(n, e.baseDelay, e.maxDelay)
	if e.jitter > 0 {
		d += time.Duration(rand.Float64() * e.jitter * float64(d))
	}
	return d
}
