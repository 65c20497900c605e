// Package testutils provides small helpers shared by tests.
package testutils

import (
	"context"
	"fmt"
	"os"
	"time"
)

// GetEnv returns the value of an env var or the provided default.
func GetEnv(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if exists {
		return value
	}
	return defaultValue
}

// WaitUntil polls the condition until it holds or the timeout elapses.
func WaitUntil(ctx context.Context, timeout time.Duration, condition func() bool) error {
	const pollInterval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	for {
		if condition() {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("condition not met after %v", timeout)
		case <-time.After(pollInterval):
		}
	}
}
