// internal/common/camunda/client_test.go
package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/everupward248/hackathon-oct25/internal/common/errors"
)

func testClient() *Client {
	return &Client{
		config: &ClientConfig{
			ConnectionTimeout: time.Second,
			RetryConfig: &RetryConfig{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
				MaxDelay:   5 * time.Millisecond,
			},
		},
	}
}

func TestExecuteWithRetry_SucceedsFirstAttempt(t *testing.T) {
	c := testClient()

	calls := 0
	result, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		calls++
		return "ok", nil
	}, "test-op")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestExecuteWithRetry_RetriesTransientErrors(t *testing.T) {
	c := testClient()

	calls := 0
	result, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection refused")
		}
		return "recovered", nil
	}, "test-op")

	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetry_DoesNotRetryPermanentErrors(t *testing.T) {
	c := testClient()

	calls := 0
	_, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		calls++
		return nil, errors.New("invalid argument")
	}, "test-op")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, commonerrors.ErrCodeExternalService, commonerrors.Code(err))
}

func TestExecuteWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	c := testClient()

	calls := 0
	_, err := c.ExecuteWithRetry(context.Background(), func(ctx context.Context) (interface{}, error) {
		calls++
		return nil, errors.New("deadline exceeded")
	}, "test-op")

	require.Error(t, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries
	assert.Equal(t, commonerrors.ErrCodeTimeout, commonerrors.Code(err))
}

func TestExecuteWithRetry_StopsOnContextCancel(t *testing.T) {
	c := testClient()
	c.config.RetryConfig.BaseDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := c.ExecuteWithRetry(ctx, func(ctx context.Context) (interface{}, error) {
			calls++
			return nil, errors.New("unavailable")
		}, "test-op")
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("ExecuteWithRetry did not return after cancellation")
	}
}

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		err       string
		retryable bool
	}{
		{"connection refused", true},
		{"rpc error: UNAVAILABLE", true},
		{"unavailable", true},
		{"context deadline exceeded", true},
		{"broken pipe", true},
		{"invalid argument", false},
		{"element not found", false},
	}

	for _, tt := range tests {
		t.Run(tt.err, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableZeebeError(errors.New(tt.err)))
		})
	}
}

func TestMapZeebeError(t *testing.T) {
	c := testClient()

	tests := []struct {
		name     string
		err      error
		wantCode commonerrors.ErrorCode
	}{
		{"connection refused", errors.New("connection refused"), commonerrors.ErrCodeExternalService},
		{"timeout", errors.New("request timeout"), commonerrors.ErrCodeTimeout},
		{"not found", errors.New("process definition not found"), commonerrors.ErrCodeNotFound},
		{"unknown", errors.New("something else"), commonerrors.ErrCodeExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := c.mapZeebeError(tt.err, "deploy", 2)
			assert.Equal(t, tt.wantCode, commonerrors.Code(mapped))

			var stdErr *commonerrors.StandardError
			require.ErrorAs(t, mapped, &stdErr)
			assert.Contains(t, stdErr.Details, "'deploy' failed after 2 attempts")
		})
	}
}
