package services

import (
	"context"
	"fmt"
	"time"

	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/toolcall"
	"github.com/valet-assistant/valet/pkg/config"
)

// Guard rejection codes.
const (
	GuardRateLimited = "RATE_LIMITED"
	GuardLoopBroken  = "LOOP_BROKEN"
)

// guardQueryTimeout bounds each guard's audit query. A guard must never
// stall the hot path.
const guardQueryTimeout = 2 * time.Second

// GuardViolation reports a guard rejection.
type GuardViolation struct {
	Code    string
	Message string
}

func (v *GuardViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// GuardService runs the pre-execution safety checks over tool call audit
// rows. Only rows whose handler actually ran (executed=true) count toward
// either guard.
type GuardService struct {
	client                 *ent.Client
	rateLimit              int
	maxConsecutiveFailures int
}

// NewGuardService creates a new GuardService
func NewGuardService(client *ent.Client, cfg *config.GuardsConfig) *GuardService {
	rateLimit := 10
	maxFailures := 3
	if cfg != nil {
		if cfg.RateLimitPerMinute > 0 {
			rateLimit = cfg.RateLimitPerMinute
		}
		if cfg.MaxConsecutiveFailures > 0 {
			maxFailures = cfg.MaxConsecutiveFailures
		}
	}
	return &GuardService{
		client:                 client,
		rateLimit:              rateLimit,
		maxConsecutiveFailures: maxFailures,
	}
}

// CheckRateLimit counts executed calls for (session, tool) in the trailing
// minute and rejects at or above the limit.
func (s *GuardService) CheckRateLimit(_ context.Context, sessionID, toolName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), guardQueryTimeout)
	defer cancel()

	cutoff := time.Now().Add(-time.Minute)
	count, err := s.client.ToolCall.Query().
		Where(
			toolcall.SessionIDEQ(sessionID),
			toolcall.ToolNameEQ(toolName),
			toolcall.ExecutedEQ(true),
			toolcall.CreatedAtGTE(cutoff),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}

	if count >= s.rateLimit {
		return &GuardViolation{
			Code:    GuardRateLimited,
			Message: fmt.Sprintf("%s was called %d times in the last minute (limit %d)", toolName, count, s.rateLimit),
		}
	}
	return nil
}

// CheckLoopBreaker inspects the latest executed calls for (session, tool);
// a full window with no success trips the breaker.
func (s *GuardService) CheckLoopBreaker(_ context.Context, sessionID, toolName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), guardQueryTimeout)
	defer cancel()

	recent, err := s.client.ToolCall.Query().
		Where(
			toolcall.SessionIDEQ(sessionID),
			toolcall.ToolNameEQ(toolName),
			toolcall.ExecutedEQ(true),
		).
		Order(ent.Desc(toolcall.FieldCreatedAt)).
		Limit(s.maxConsecutiveFailures).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to check loop breaker: %w", err)
	}

	if len(recent) < s.maxConsecutiveFailures {
		return nil
	}
	for _, call := range recent {
		if call.Status == toolcall.StatusSuccess {
			return nil
		}
	}

	return &GuardViolation{
		Code:    GuardLoopBroken,
		Message: fmt.Sprintf("%s failed %d times in a row; not retrying automatically", toolName, s.maxConsecutiveFailures),
	}
}
