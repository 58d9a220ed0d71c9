package repository

import (
	"context"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
)

type failureKey struct{}

// WithFailure marks ctx so that MockAPI reads fail.
// The mark is read when List is called, not when MockAPI is built.
func WithFailure(ctx context.Context, fail bool) context.Context {
	return context.WithValue(ctx, failureKey{}, fail)
}

// FailureRequested reports whether ctx carries a failure mark.
func FailureRequested(ctx context.Context) bool {
	fail, _ := ctx.Value(failureKey{}).(bool)
	return fail
}

// FailureFlag parses the value of the "error" query parameter.
func FailureFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// MockAPI simulates a remote projects endpoint in front of a Lister:
// every call waits a fixed latency, then either fails as a whole or
// returns the full collection.
type MockAPI struct {
	inner      Lister
	delay      time.Duration
	forceError bool
}

// NewMockAPI wraps inner with a fixed delay. When forceError is set every
// call fails regardless of the request context.
func NewMockAPI(inner Lister, delay time.Duration, forceError bool) *MockAPI {
	return &MockAPI{inner: inner, delay: delay, forceError: forceError}
}

// List waits for the simulated latency and then reads the collection.
// Cancelling ctx aborts the wait and returns ctx.Err().
func (m *MockAPI) List(ctx context.Context) ([]domain.Project, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if m.forceError || FailureRequested(ctx) {
		return nil, domain.NewFetchError(domain.MockFetchErrorMessage)
	}

	return m.inner.List(ctx)
}
