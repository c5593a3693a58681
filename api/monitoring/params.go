package monitoring

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Metric selects the infrastructure series returned by GetInfrastructureMetrics.
type Metric string

// Available infrastructure metrics.
const (
	// MetricAvgBuildTime is the average build time of the indices in seconds.
	MetricAvgBuildTime Metric = "avg_build_time"
	// MetricSSDUsage is the proportion of SSD vs RAM usage in %.
	MetricSSDUsage Metric = "ssd_usage"
	// MetricRAMSearchUsage is the RAM used for search in MB.
	MetricRAMSearchUsage Metric = "ram_search_usage"
	// MetricRAMIndexingUsage is the RAM used for indexing in MB.
	MetricRAMIndexingUsage Metric = "ram_indexing_usage"
	// MetricCPUUsage is the proportion of CPU idleness in % (0% means busy).
	MetricCPUUsage Metric = "cpu_usage"
	// MetricAll requests every metric above.
	MetricAll Metric = "*"
)

var knownMetrics = []Metric{
	MetricAvgBuildTime, MetricSSDUsage, MetricRAMSearchUsage,
	MetricRAMIndexingUsage, MetricCPUUsage, MetricAll,
}

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool {
	return slices.Contains(knownMetrics, m)
}

// Period is the time window of an infrastructure query.
type Period string

// Available periods and their resolution.
const (
	PeriodMinute Period = "minute" // 10 points, one per 10 seconds
	PeriodHour   Period = "hour"   // 60 points, one per minute
	PeriodDay    Period = "day"    // 144 points, one per 10 minutes
	PeriodWeek   Period = "week"   // 168 points, one per hour
	PeriodMonth  Period = "month"  // 30 points, one per day
)

var knownPeriods = []Period{PeriodMinute, PeriodHour, PeriodDay, PeriodWeek, PeriodMonth}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	return slices.Contains(knownPeriods, p)
}

// joinClusters comma-joins a filter in order. It returns "" for an empty
// filter and rejects blank names.
func joinClusters(clusters []string) (string, error) {
	if len(clusters) == 0 {
		return "", nil
	}

	for i, name := range clusters {
		if strings.TrimSpace(name) == "" {
			return "", errors.Wrapf(ErrInvalidParameter, "cluster name at index %d is blank", i)
		}
	}

	return strings.Join(clusters, ","), nil
}
