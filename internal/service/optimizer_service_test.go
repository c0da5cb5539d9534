package service_test

import (
	"context"
	"errors"
	"testing"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/config"
	"syscall-optimizer-backend/internal/mocks"
	"syscall-optimizer-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubSource returns a fixed sample set so tests are deterministic.
type stubSource struct {
	samples []service.SyscallSample
	usage   service.ResourceUsage
}

func (s *stubSource) Sample(n int) []service.SyscallSample {
	if n > len(s.samples) {
		n = len(s.samples)
	}
	return s.samples[:n]
}

func (s *stubSource) SystemResources() service.ResourceUsage {
	return s.usage
}

func optimizerConfig() config.OptimizerConfig {
	return config.OptimizerConfig{
		PerformanceThreshold: 0.05,
		SampleBatchSize:      10,
	}
}

func sample(name string, duration, cpu, mem, disk float64) service.SyscallSample {
	return service.SyscallSample{
		Name:          name,
		Category:      service.CategoryFor(name),
		Duration:      duration,
		CPUPercent:    cpu,
		MemoryPercent: mem,
		DiskIOPercent: disk,
	}
}

func TestOptimizerService_RecordAggregates(t *testing.T) {
	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, nil)

	svc.Record(sample("read", 0.1, 10, 10, 10))
	svc.Record(sample("read", 0.3, 30, 20, 10))

	record, ok := svc.SyscallDetails("read")
	require.True(t, ok)

	assert.Equal(t, int64(2), record.ExecutionCount)
	assert.InDelta(t, 0.2, record.AverageTime, 1e-9)
	assert.InDelta(t, 0.1, record.PeakPerformance, 1e-9)
	assert.Equal(t, service.CategoryFileIO, record.Category)
	assert.InDelta(t, 20, record.ResourceImpact.CPUPercent, 1e-9)
}

func TestOptimizerService_PerformanceDataSeedsWhenEmpty(t *testing.T) {
	source := &stubSource{samples: []service.SyscallSample{
		sample("read", 0.01, 5, 5, 5),
		sample("mmap", 0.02, 5, 5, 5),
	}}
	svc := service.NewOptimizerService(optimizerConfig(), source, nil)

	data := svc.PerformanceData()

	require.NotEmpty(t, data)
	assert.Contains(t, data, "read")
	assert.Contains(t, data, "mmap")
}

func TestOptimizerService_Classification(t *testing.T) {
	tests := []struct {
		name     string
		samples  []service.SyscallSample
		expected string
	}{
		{
			name:     "resource bottleneck wins",
			samples:  []service.SyscallSample{sample("read", 0.01, 60, 5, 5)},
			expected: service.RecommendationCritical,
		},
		{
			name: "high variability",
			samples: []service.SyscallSample{
				sample("write", 2.0, 5, 5, 5),
				sample("write", 0.1, 5, 5, 5),
			},
			expected: service.RecommendationVariability,
		},
		{
			name:     "severe when far past the threshold",
			samples:  []service.SyscallSample{sample("open", 0.2, 5, 5, 5)},
			expected: service.RecommendationSevere,
		},
		{
			name:     "moderate otherwise",
			samples:  []service.SyscallSample{sample("close", 0.08, 5, 5, 5)},
			expected: service.RecommendationModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, nil)
			for _, s := range tt.samples {
				svc.Record(s)
			}

			recommendations := svc.Recommendations(context.Background())

			require.Len(t, recommendations, 1)
			assert.Equal(t, tt.expected, recommendations[0].RecommendationType)
		})
	}
}

func TestOptimizerService_FastSyscallsAreNotFlagged(t *testing.T) {
	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, nil)
	svc.Record(sample("getpid", 0.001, 2, 2, 2))

	recommendations := svc.Recommendations(context.Background())

	assert.Empty(t, recommendations)
}

func TestOptimizerService_RecommendationsUseCompleter(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Batch reads with io_uring to cut per-call overhead.", nil)

	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, completer)
	svc.Record(sample("read", 0.2, 5, 5, 5))

	recommendations := svc.Recommendations(context.Background())

	require.Len(t, recommendations, 1)
	assert.Equal(t, "Batch reads with io_uring to cut per-call overhead.", recommendations[0].SuggestedAction)
}

// Completion failures must degrade to the rule table, never to an error or
// an empty suggestion.
func TestOptimizerService_RecommendationsFallBackOnCompleterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", apperrors.ErrExternalServiceUnavailable)

	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, completer)
	svc.Record(sample("read", 0.01, 60, 5, 5))

	recommendations := svc.Recommendations(context.Background())

	require.Len(t, recommendations, 1)
	assert.Equal(t, "Consider memory-mapped files instead of direct read calls", recommendations[0].SuggestedAction)
}

func TestOptimizerService_RecommendationsFallBackWithoutCompleter(t *testing.T) {
	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, nil)
	svc.Record(sample("futex", 0.01, 5, 5, 60))

	recommendations := svc.Recommendations(context.Background())

	require.Len(t, recommendations, 1)
	assert.Equal(t, service.CategorySync, recommendations[0].Category)
	assert.NotEmpty(t, recommendations[0].SuggestedAction)
	assert.NotContains(t, recommendations[0].SuggestedAction, "%s")
}

func TestOptimizerService_RecommendationsSortedAndStored(t *testing.T) {
	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, nil)
	svc.Record(sample("write", 0.2, 5, 5, 5))
	svc.Record(sample("mmap", 0.2, 5, 5, 5))

	recommendations := svc.Recommendations(context.Background())

	require.Len(t, recommendations, 2)
	assert.Equal(t, "mmap", recommendations[0].Syscall)
	assert.Equal(t, "write", recommendations[1].Syscall)

	// The last suggestion is carried on subsequent performance reads.
	record, ok := svc.SyscallDetails("mmap")
	require.True(t, ok)
	assert.Equal(t, recommendations[0].SuggestedAction, record.Recommendation)
}

func TestOptimizerService_CriticalAlertsCountsBottlenecks(t *testing.T) {
	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, nil)
	svc.Record(sample("read", 0.01, 60, 5, 5))
	svc.Record(sample("write", 0.01, 5, 5, 5))

	assert.Equal(t, 1, svc.CriticalAlerts())
	assert.Equal(t, int64(2), svc.TotalExecutions())
}

func TestOptimizerService_CompleterErrorNeverSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused")).
		AnyTimes()

	svc := service.NewOptimizerService(optimizerConfig(), &stubSource{}, completer)
	svc.Record(sample("read", 0.2, 5, 5, 5))

	recommendations := svc.Recommendations(context.Background())

	require.Len(t, recommendations, 1)
	assert.NotEmpty(t, recommendations[0].SuggestedAction)
}
