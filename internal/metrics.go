package internal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector collects parse statistics for a parser.
type MetricsCollector struct {
	totalParses         int64
	successfulParses    int64
	failedParses        int64
	bytesParsed         int64
	totalProcessingTime int64
	maxProcessingTime   int64
	minProcessingTime   int64
	maxDepth            int64
	errorsByStatus      sync.Map
	startTime           time.Time
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		startTime:         time.Now(),
		minProcessingTime: 1<<63 - 1,
	}
}

// RecordParse records one completed parse of size bytes that reached depth.
func (mc *MetricsCollector) RecordParse(duration time.Duration, success bool, size int64, depth int) {
	atomic.AddInt64(&mc.totalParses, 1)

	if success {
		atomic.AddInt64(&mc.successfulParses, 1)
	} else {
		atomic.AddInt64(&mc.failedParses, 1)
	}

	if size > 0 {
		atomic.AddInt64(&mc.bytesParsed, size)
	}
	updateMax(&mc.maxDepth, int64(depth))

	durationNs := duration.Nanoseconds()
	if durationNs > 0 {
		atomic.AddInt64(&mc.totalProcessingTime, durationNs)
		updateMax(&mc.maxProcessingTime, durationNs)
		updateMin(&mc.minProcessingTime, durationNs)
	}
}

// RecordError records a failure under its status name.
func (mc *MetricsCollector) RecordError(status string) {
	actual, _ := mc.errorsByStatus.LoadOrStore(status, new(int64))
	atomic.AddInt64(actual.(*int64), 1)
}

// GetMetrics returns a snapshot of the collected metrics.
func (mc *MetricsCollector) GetMetrics() Metrics {
	total := atomic.LoadInt64(&mc.totalParses)
	totalTime := atomic.LoadInt64(&mc.totalProcessingTime)

	var avg time.Duration
	if total > 0 {
		avg = time.Duration(totalTime / total)
	}

	minTime := atomic.LoadInt64(&mc.minProcessingTime)
	if minTime == 1<<63-1 {
		minTime = 0
	}

	errorsByStatus := make(map[string]int64)
	mc.errorsByStatus.Range(func(key, value any) bool {
		errorsByStatus[key.(string)] = atomic.LoadInt64(value.(*int64))
		return true
	})

	return Metrics{
		TotalParses:         total,
		SuccessfulParses:    atomic.LoadInt64(&mc.successfulParses),
		FailedParses:        atomic.LoadInt64(&mc.failedParses),
		BytesParsed:         atomic.LoadInt64(&mc.bytesParsed),
		MaxDepth:            atomic.LoadInt64(&mc.maxDepth),
		TotalProcessingTime: time.Duration(totalTime),
		AvgProcessingTime:   avg,
		MaxProcessingTime:   time.Duration(atomic.LoadInt64(&mc.maxProcessingTime)),
		MinProcessingTime:   time.Duration(minTime),
		Uptime:              time.Since(mc.startTime),
		ErrorsByStatus:      errorsByStatus,
	}
}

// Reset resets all metrics
func (mc *MetricsCollector) Reset() {
	atomic.StoreInt64(&mc.totalParses, 0)
	atomic.StoreInt64(&mc.successfulParses, 0)
	atomic.StoreInt64(&mc.failedParses, 0)
	atomic.StoreInt64(&mc.bytesParsed, 0)
	atomic.StoreInt64(&mc.totalProcessingTime, 0)
	atomic.StoreInt64(&mc.maxProcessingTime, 0)
	atomic.StoreInt64(&mc.minProcessingTime, 1<<63-1)
	atomic.StoreInt64(&mc.maxDepth, 0)
	mc.errorsByStatus.Range(func(key, _ any) bool {
		mc.errorsByStatus.Delete(key)
		return true
	})
	mc.startTime = time.Now()
}

// GetSummary returns a formatted summary of metrics
func (mc *MetricsCollector) GetSummary() string {
	m := mc.GetMetrics()

	return fmt.Sprintf(`Parse Summary:
  Parses: %d total (%d successful, %d failed)
  Input: %d bytes, max depth %d
  Performance: avg %v, max %v, min %v
  Uptime: %v`,
		m.TotalParses,
		m.SuccessfulParses,
		m.FailedParses,
		m.BytesParsed,
		m.MaxDepth,
		m.AvgProcessingTime,
		m.MaxProcessingTime,
		m.MinProcessingTime,
		m.Uptime,
	)
}

// Metrics is a point-in-time snapshot of a MetricsCollector.
type Metrics struct {
	TotalParses      int64 `json:"total_parses"`
	SuccessfulParses int64 `json:"successful_parses"`
	FailedParses     int64 `json:"failed_parses"`
	BytesParsed      int64 `json:"bytes_parsed"`
	MaxDepth         int64 `json:"max_depth"`

	TotalProcessingTime time.Duration `json:"total_processing_time"`
	AvgProcessingTime   time.Duration `json:"avg_processing_time"`
	MaxProcessingTime   time.Duration `json:"max_processing_time"`
	MinProcessingTime   time.Duration `json:"min_processing_time"`

	Uptime         time.Duration    `json:"uptime"`
	ErrorsByStatus map[string]int64 `json:"errors_by_status"`
}

// updateMax atomically updates target to value if value is greater
func updateMax(target *int64, value int64) {
	for {
		current := atomic.LoadInt64(target)
		if value <= current || atomic.CompareAndSwapInt64(target, current, value) {
			return
		}
	}
}

// updateMin atomically updates target to value if value is smaller
func updateMin(target *int64, value int64) {
	for {
		current := atomic.LoadInt64(target)
		if value >= current || atomic.CompareAndSwapInt64(target, current, value) {
			return
		}
	}
}
