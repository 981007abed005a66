package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/middleware"
)

type serviceOptions struct {
	clock                   func() time.Time
	defaultCustomsAccountID string
}

// Option is a functional option shared by every service constructor.
type Option func(*serviceOptions)

// WithClock overrides the time source, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *serviceOptions) {
		o.clock = clock
	}
}

// WithDefaultCustomsAccount sets the account customs fees are drawn from when
// the caller selects none.
func WithDefaultCustomsAccount(accountID string) Option {
	return func(o *serviceOptions) {
		o.defaultCustomsAccountID = accountID
	}
}

func buildOptions(opts []Option) serviceOptions {
	o := serviceOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
}

func newBaseService(o serviceOptions) BaseService {
	return BaseService{clock: o.clock}
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogFailure logs err at error level unless it is an expected refusal
// (validation, not found, forbidden or a business rule), which is logged at info.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrForbidden) || errors.Is(err, apperrors.ErrBusinessRule) ||
		errors.Is(err, apperrors.ErrDuplicate) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("reason", err.Error()))
		args = append(args, keyvals...)
		s.LogInfo(ctx, msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// Authorize turns a denied capability decision into a forbidden error.
func (s *BaseService) Authorize(ctx context.Context, actor domain.Actor, decision domain.Decision, forbidden error, keyvals ...any) error {
	if decision.Allowed {
		return nil
	}
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("user_id", actor.UserID), slog.String("reason", decision.Reason))
	args = append(args, keyvals...)
	s.LogInfo(ctx, "Action denied", args...)
	return fmt.Errorf("%w: %s", forbidden, decision.Reason)
}
