package service

import (
	"math/rand"
	"sync"
	"time"
)

// Syscall categories.
const (
	CategoryFileIO  = "File I/O"
	CategoryProcess = "Process"
	CategoryMemory  = "Memory"
	CategoryIPC     = "IPC"
	CategorySync    = "Synchronization"
	CategorySignal  = "Signal"
	CategoryTime    = "Time"
	CategoryNetwork = "Network"
	CategoryOther   = "Other"
)

// SyscallSample is one observed (or synthesized) syscall execution.
type SyscallSample struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	// Duration is the execution time in seconds.
	Duration float64 `json:"duration"`
	// Resource usage attributed to the call, in percent.
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskIOPercent float64 `json:"disk_io_percent"`
}

// ResourceUsage is a whole-system usage snapshot.
type ResourceUsage struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskIOPercent float64 `json:"disk_io_percent"`
}

// SampleSource supplies syscall samples and system usage. The synthetic
// source ships by default; a real probe can be wired in behind the same
// interface without touching the optimizer.
type SampleSource interface {
	Sample(n int) []SyscallSample
	SystemResources() ResourceUsage
}

// syscallCatalog maps syscall names to categories, trimmed to the calls the
// synthetic source emits.
var syscallCatalog = map[string]string{
	"read":          CategoryFileIO,
	"write":         CategoryFileIO,
	"open":          CategoryFileIO,
	"openat":        CategoryFileIO,
	"close":         CategoryFileIO,
	"stat":          CategoryFileIO,
	"fstat":         CategoryFileIO,
	"lseek":         CategoryFileIO,
	"access":        CategoryFileIO,
	"fcntl":         CategoryFileIO,
	"fsync":         CategoryFileIO,
	"dup":           CategoryFileIO,
	"dup2":          CategoryFileIO,
	"mmap":          CategoryMemory,
	"munmap":        CategoryMemory,
	"mprotect":      CategoryMemory,
	"brk":           CategoryMemory,
	"madvise":       CategoryMemory,
	"fork":          CategoryProcess,
	"clone":         CategoryProcess,
	"execve":        CategoryProcess,
	"wait4":         CategoryProcess,
	"exit":          CategoryProcess,
	"getpid":        CategoryProcess,
	"pipe":          CategoryIPC,
	"pipe2":         CategoryIPC,
	"futex":         CategorySync,
	"kill":          CategorySignal,
	"rt_sigaction":  CategorySignal,
	"clock_gettime": CategoryTime,
	"gettimeofday":  CategoryTime,
	"socket":        CategoryNetwork,
	"connect":       CategoryNetwork,
	"accept":        CategoryNetwork,
	"send":          CategoryNetwork,
	"recv":          CategoryNetwork,
	"select":        CategoryOther,
	"poll":          CategoryOther,
	"epoll_wait":    CategoryOther,
	"ioctl":         CategoryOther,
}

// CategoryFor returns the category of a syscall name, or Other.
func CategoryFor(name string) string {
	if category, ok := syscallCatalog[name]; ok {
		return category
	}
	return CategoryOther
}

// SyntheticSource generates plausible random samples in place of a kernel
// probe.
type SyntheticSource struct {
	mu    sync.Mutex
	rng   *rand.Rand
	names []string
}

func NewSyntheticSource() *SyntheticSource {
	names := make([]string, 0, len(syscallCatalog))
	for name := range syscallCatalog {
		names = append(names, name)
	}
	return &SyntheticSource{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		names: names,
	}
}

// Sample returns n synthetic samples. Durations span 0.1ms to 150ms so a
// realistic share lands above the default threshold.
func (s *SyntheticSource) Sample(n int) []SyscallSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	samples := make([]SyscallSample, 0, n)
	for i := 0; i < n; i++ {
		name := s.names[s.rng.Intn(len(s.names))]
		samples = append(samples, SyscallSample{
			Name:          name,
			Category:      CategoryFor(name),
			Duration:      0.0001 + s.rng.Float64()*0.1499,
			CPUPercent:    s.rng.Float64() * 60,
			MemoryPercent: s.rng.Float64() * 40,
			DiskIOPercent: s.rng.Float64() * 70,
		})
	}
	return samples
}

// SystemResources synthesizes a plausible whole-system usage snapshot.
func (s *SyntheticSource) SystemResources() ResourceUsage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ResourceUsage{
		CPUPercent:    5 + s.rng.Float64()*70,
		MemoryPercent: 20 + s.rng.Float64()*60,
		DiskIOPercent: 10 + s.rng.Float64()*65,
	}
}
