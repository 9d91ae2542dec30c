package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestHealthRegistry_Register_RejectsDuplicates(t *testing.T) {
	r := NewHealthRegistry()

	require.NoError(t, r.Register(stubChecker{name: "postgres"}))

	err := r.Register(stubChecker{name: "postgres"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
}

func TestHealthRegistry_CheckAll(t *testing.T) {
	tests := []struct {
		name           string
		checkers       []stubChecker
		expectedStatus HealthStatus
	}{
		{
			name:           "no checkers is healthy",
			checkers:       nil,
			expectedStatus: HealthStatusHealthy,
		},
		{
			name: "all passing",
			checkers: []stubChecker{
				{name: "postgres"},
				{name: "cache"},
			},
			expectedStatus: HealthStatusHealthy,
		},
		{
			name: "one failing marks overall unhealthy",
			checkers: []stubChecker{
				{name: "postgres", err: errors.New("connection refused")},
				{name: "cache"},
			},
			expectedStatus: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, r.Register(c))
			}

			result := r.CheckAll(context.Background())

			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))

			for _, c := range tt.checkers {
				check := result.Checks[c.name]
				require.NotNil(t, check)
				if c.err != nil {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Equal(t, c.err.Error(), check.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status)
				}
			}
		})
	}
}
