package service_test

import (
	"testing"

	"syscall-optimizer-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, service.CategoryFileIO, service.CategoryFor("read"))
	assert.Equal(t, service.CategoryMemory, service.CategoryFor("mmap"))
	assert.Equal(t, service.CategorySync, service.CategoryFor("futex"))
	assert.Equal(t, service.CategoryOther, service.CategoryFor("made_up_call"))
}

func TestSyntheticSource_Sample(t *testing.T) {
	source := service.NewSyntheticSource()

	samples := source.Sample(50)
	require.Len(t, samples, 50)

	for _, s := range samples {
		assert.NotEmpty(t, s.Name)
		assert.Equal(t, service.CategoryFor(s.Name), s.Category)
		assert.GreaterOrEqual(t, s.Duration, 0.0001)
		assert.LessOrEqual(t, s.Duration, 0.15)
		assert.GreaterOrEqual(t, s.CPUPercent, 0.0)
		assert.LessOrEqual(t, s.CPUPercent, 60.0)
	}
}

func TestSyntheticSource_SystemResources(t *testing.T) {
	source := service.NewSyntheticSource()

	usage := source.SystemResources()

	assert.GreaterOrEqual(t, usage.CPUPercent, 5.0)
	assert.LessOrEqual(t, usage.CPUPercent, 75.0)
	assert.GreaterOrEqual(t, usage.MemoryPercent, 20.0)
	assert.LessOrEqual(t, usage.MemoryPercent, 80.0)
}
