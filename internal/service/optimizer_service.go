package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"syscall-optimizer-backend/internal/config"
	"syscall-optimizer-backend/internal/llm"
	"syscall-optimizer-backend/pkg/logger"
)

// Recommendation classifications, ordered by severity.
const (
	RecommendationCritical    = "CRITICAL_RESOURCE_BOTTLENECK"
	RecommendationVariability = "HIGH_VARIABILITY"
	RecommendationSevere      = "SEVERE_PERFORMANCE_ISSUE"
	RecommendationModerate    = "MODERATE_OPTIMIZATION"
)

// criticalImpactPercent flags a syscall as a resource bottleneck when any
// single resource impact exceeds it.
const criticalImpactPercent = 50.0

// ResourceImpact is the per-resource usage attributed to a syscall.
type ResourceImpact struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskIOPercent float64 `json:"disk_io_percent"`
}

// SyscallRecord aggregates the observed performance of one syscall.
// PeakPerformance is the best (lowest) duration seen.
type SyscallRecord struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	AverageTime     float64        `json:"average_time"`
	ExecutionCount  int64          `json:"execution_count"`
	Variance        float64        `json:"variance"`
	PeakPerformance float64        `json:"peak_performance"`
	LastUpdated     time.Time      `json:"last_updated"`
	ResourceImpact  ResourceImpact `json:"resource_impact"`
	Recommendation  string         `json:"recommendation,omitempty"`
}

// Recommendation is one optimization suggestion for a flagged syscall.
type Recommendation struct {
	Syscall            string         `json:"syscall"`
	Category           string         `json:"category"`
	CurrentPerformance float64        `json:"current_performance"`
	RecommendationType string         `json:"recommendation_type"`
	SuggestedAction    string         `json:"suggested_action"`
	ResourceImpact     ResourceImpact `json:"resource_impact"`
}

// OptimizerService keeps the in-memory syscall performance table and turns
// it into optimization suggestions, via the completion service when
// available and the category rule table otherwise.
type OptimizerService struct {
	mu              sync.Mutex
	records         map[string]*SyscallRecord
	recommendations map[string]string

	cfg       config.OptimizerConfig
	source    SampleSource
	completer llm.Completer
}

// NewOptimizerService wires the optimizer. completer may be nil; every
// suggestion then comes from the rule table.
func NewOptimizerService(cfg config.OptimizerConfig, source SampleSource, completer llm.Completer) *OptimizerService {
	return &OptimizerService{
		records:         make(map[string]*SyscallRecord),
		recommendations: make(map[string]string),
		cfg:             cfg,
		source:          source,
		completer:       completer,
	}
}

// Record folds one sample into the running aggregate for its syscall.
func (s *OptimizerService) Record(sample SyscallSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLocked(sample)
}

func (s *OptimizerService) recordLocked(sample SyscallSample) {
	now := time.Now().UTC()

	record, exists := s.records[sample.Name]
	if !exists {
		s.records[sample.Name] = &SyscallRecord{
			Name:            sample.Name,
			Category:        sample.Category,
			AverageTime:     sample.Duration,
			ExecutionCount:  1,
			Variance:        0,
			PeakPerformance: sample.Duration,
			LastUpdated:     now,
			ResourceImpact: ResourceImpact{
				CPUPercent:    sample.CPUPercent,
				MemoryPercent: sample.MemoryPercent,
				DiskIOPercent: sample.DiskIOPercent,
			},
		}
		return
	}

	total := record.ExecutionCount + 1
	newAverage := (record.AverageTime*float64(record.ExecutionCount) + sample.Duration) / float64(total)

	// Spread between the previous average and the new observation
	mean := (record.AverageTime + sample.Duration) / 2
	record.Variance = ((record.AverageTime-mean)*(record.AverageTime-mean) +
		(sample.Duration-mean)*(sample.Duration-mean)) / 2

	record.ResourceImpact = ResourceImpact{
		CPUPercent:    (record.ResourceImpact.CPUPercent*float64(record.ExecutionCount) + sample.CPUPercent) / float64(total),
		MemoryPercent: (record.ResourceImpact.MemoryPercent*float64(record.ExecutionCount) + sample.MemoryPercent) / float64(total),
		DiskIOPercent: (record.ResourceImpact.DiskIOPercent*float64(record.ExecutionCount) + sample.DiskIOPercent) / float64(total),
	}

	record.AverageTime = newAverage
	record.ExecutionCount = total
	if sample.Duration < record.PeakPerformance {
		record.PeakPerformance = sample.Duration
	}
	record.LastUpdated = now
}

// Ingest pulls one batch from the sample source into the table.
func (s *OptimizerService) Ingest(n int) int {
	samples := s.source.Sample(n)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sample := range samples {
		s.recordLocked(sample)
	}
	return len(samples)
}

// PerformanceData returns a snapshot of all records keyed by syscall name,
// each carrying its last known recommendation. Seeds the table from the
// source on first call so the endpoint never serves an empty dataset.
func (s *OptimizerService) PerformanceData() map[string]SyscallRecord {
	s.mu.Lock()
	empty := len(s.records) == 0
	s.mu.Unlock()

	if empty {
		s.Ingest(s.cfg.SampleBatchSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := make(map[string]SyscallRecord, len(s.records))
	for name, record := range s.records {
		snapshot := *record
		snapshot.Recommendation = s.recommendations[name]
		data[name] = snapshot
	}
	return data
}

// Categories returns syscall names grouped by category, sorted for stable
// output.
func (s *OptimizerService) Categories() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make(map[string][]string)
	for name, record := range s.records {
		categories[record.Category] = append(categories[record.Category], name)
	}
	for _, names := range categories {
		sort.Strings(names)
	}
	return categories
}

// SyscallDetails returns one record by name.
func (s *OptimizerService) SyscallDetails(name string) (SyscallRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[name]
	if !ok {
		return SyscallRecord{}, false
	}
	snapshot := *record
	snapshot.Recommendation = s.recommendations[name]
	return snapshot, true
}

// TotalExecutions returns the summed execution count across all records.
func (s *OptimizerService) TotalExecutions() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, record := range s.records {
		total += record.ExecutionCount
	}
	return total
}

// CriticalAlerts counts records currently classified as resource
// bottlenecks. Used by the health snapshot; no completion call involved.
func (s *OptimizerService) CriticalAlerts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.records {
		if exceedsImpact(record.ResourceImpact) {
			count++
		}
	}
	return count
}

// Recommendations classifies every flagged record and produces a suggestion
// for each. The completion service is consulted per record with the
// request's context; any failure degrades to the rule table and is never
// surfaced to the caller.
func (s *OptimizerService) Recommendations(ctx context.Context) []Recommendation {
	flagged := s.flaggedRecords()

	recommendations := make([]Recommendation, 0, len(flagged))
	for _, record := range flagged {
		action := s.suggest(ctx, record)
		recommendations = append(recommendations, Recommendation{
			Syscall:            record.Name,
			Category:           record.Category,
			CurrentPerformance: record.AverageTime,
			RecommendationType: s.classify(record),
			SuggestedAction:    action,
			ResourceImpact:     record.ResourceImpact,
		})
	}

	s.mu.Lock()
	for _, rec := range recommendations {
		s.recommendations[rec.Syscall] = rec.SuggestedAction
	}
	s.mu.Unlock()

	return recommendations
}

// flaggedRecords snapshots the records worth recommending on, sorted by
// name so output order is stable. The lock is released before any network
// call happens.
func (s *OptimizerService) flaggedRecords() []SyscallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	flagged := make([]SyscallRecord, 0)
	for _, record := range s.records {
		if record.AverageTime > s.cfg.PerformanceThreshold || exceedsImpact(record.ResourceImpact) {
			flagged = append(flagged, *record)
		}
	}
	sort.Slice(flagged, func(i, j int) bool { return flagged[i].Name < flagged[j].Name })
	return flagged
}

func exceedsImpact(impact ResourceImpact) bool {
	return impact.CPUPercent > criticalImpactPercent ||
		impact.MemoryPercent > criticalImpactPercent ||
		impact.DiskIOPercent > criticalImpactPercent
}

func (s *OptimizerService) classify(record SyscallRecord) string {
	switch {
	case exceedsImpact(record.ResourceImpact):
		return RecommendationCritical
	case record.Variance > record.AverageTime*0.5:
		return RecommendationVariability
	case record.AverageTime > s.cfg.PerformanceThreshold*2:
		return RecommendationSevere
	default:
		return RecommendationModerate
	}
}

const suggestionSystemPrompt = "You are an AI assistant specialized in system performance optimization. " +
	"Provide your suggestions in plain text without code or special formatting."

func buildPrompt(record SyscallRecord) string {
	return fmt.Sprintf(
		"Based on the following performance data for a system call, suggest a specific and concise "+
			"optimization strategy in one or two sentences of plain text.\n\n"+
			"System Call: %s\nCategory: %s\nAverage Execution Time: %.4f seconds\nVariance: %.4f\n"+
			"Peak Performance: %.4f seconds\nResource Impacts:\n- CPU: %.2f%%\n- Memory: %.2f%%\n- Disk I/O: %.2f%%",
		record.Name, record.Category, record.AverageTime, record.Variance, record.PeakPerformance,
		record.ResourceImpact.CPUPercent, record.ResourceImpact.MemoryPercent, record.ResourceImpact.DiskIOPercent,
	)
}

// suggest asks the completion service for a strategy and falls back to the
// rule table on any error, including a nil or disabled client.
func (s *OptimizerService) suggest(ctx context.Context, record SyscallRecord) string {
	if s.completer != nil {
		suggestion, err := s.completer.Complete(ctx, suggestionSystemPrompt, buildPrompt(record))
		if err == nil && suggestion != "" {
			return suggestion
		}
		if err != nil {
			log := logger.Get()
			log.Debug().Err(err).Str("syscall", record.Name).Msg("completion unavailable, using rule table")
		}
	}
	return fallbackStrategy(record)
}

// categoryStrategies is the static rule table, ordered from cheapest to most
// invasive mitigation per category.
var categoryStrategies = map[string][]string{
	CategoryFileIO: {
		"Implement buffered I/O for %s to reduce system call frequency",
		"Use asynchronous I/O for %s operations to avoid blocking",
		"Consider memory-mapped files instead of direct %s calls",
	},
	CategoryMemory: {
		"Optimize memory allocation patterns around %s",
		"Consider using huge pages to reduce %s overhead",
		"Implement memory pooling to reduce fragmentation in %s",
	},
	CategoryProcess: {
		"Minimize %s calls through process reuse",
		"Use thread pools instead of frequent %s calls",
		"Implement process caching for %s operations",
	},
	CategorySync: {
		"Reduce lock contention around %s",
		"Use lock-free algorithms when possible to avoid %s",
		"Implement batching to reduce %s frequency",
	},
	CategoryIPC: {
		"Use shared memory instead of pipes for %s",
		"Batch messages to reduce %s overhead",
		"Consider using zero-copy techniques for %s",
	},
	CategoryTime: {
		"Cache time values to reduce %s frequency",
		"Use monotonic clocks for performance-sensitive code around %s",
		"Batch operations that require timestamps from %s",
	},
	CategoryNetwork: {
		"Batch small writes to reduce %s frequency",
		"Enable connection pooling to amortize %s cost",
		"Consider vectored I/O to cut %s round trips",
	},
}

var genericStrategies = []string{
	"Implement advanced caching for %s",
	"Optimize memory allocation for %s",
	"Implement adaptive batching for %s",
}

// fallbackStrategy picks a rule-table entry weighted by the dominant
// resource impact, mirroring the behaviour users see when the completion
// service is configured but unreachable.
func fallbackStrategy(record SyscallRecord) string {
	strategies, ok := categoryStrategies[record.Category]
	if !ok {
		strategies = genericStrategies
	}

	dominant := record.ResourceImpact.CPUPercent
	if record.ResourceImpact.MemoryPercent > dominant {
		dominant = record.ResourceImpact.MemoryPercent
	}
	if record.ResourceImpact.DiskIOPercent > dominant {
		dominant = record.ResourceImpact.DiskIOPercent
	}

	index := int(dominant / 20)
	if index >= len(strategies) {
		index = len(strategies) - 1
	}

	return fmt.Sprintf(strategies[index], record.Name)
}
