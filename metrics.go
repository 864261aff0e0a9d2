package circumflex

// Metric names for stats.Tracker.
const (
	// MetricHit is a counter of cache hits.
	MetricHit = "cache_hit"

	// MetricMiss is a counter of cache misses.
	MetricMiss = "cache_miss"

	// MetricWrite is a counter of direct cache writes.
	MetricWrite = "cache_write"

	// MetricBuild is a counter of lazily computed values.
	MetricBuild = "cache_build"

	// MetricFailed is a counter of failed computations.
	MetricFailed = "cache_failed"

	// MetricItems is a gauge of cached entries.
	MetricItems = "cache_items"
)
