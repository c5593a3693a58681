package middleware

import (
	"fmt"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "status without filter",
			input:    "/1/status",
			expected: "/1/status",
		},
		{
			name:     "status with cluster list",
			input:    "/1/status/c1-de,c2-us",
			expected: "/1/status/:clusters",
		},
		{
			name:     "incidents with single cluster",
			input:    "/1/incidents/c3-fr",
			expected: "/1/incidents/:clusters",
		},
		{
			name:     "latency",
			input:    "/1/latency/c1-de,c4-eu",
			expected: "/1/latency/:clusters",
		},
		{
			name:     "indexing",
			input:    "/1/indexing/c1-de",
			expected: "/1/indexing/:clusters",
		},
		{
			name:     "reachability keeps probes suffix",
			input:    "/1/reachability/c1-de,c2-us/probes",
			expected: "/1/reachability/:clusters/probes",
		},
		{
			name:     "reachability without filter",
			input:    "/1/reachability/probes",
			expected: "/1/reachability/probes",
		},
		{
			name:     "inventory untouched",
			input:    "/1/inventory/servers",
			expected: "/1/inventory/servers",
		},
		{
			name:     "infrastructure metric and period",
			input:    "/1/infrastructure/cpu_usage/period/day",
			expected: "/1/infrastructure/:metric/period/:period",
		},
		{
			name:     "base path prefix preserved",
			input:    "/proxy/1/status/c1-de",
			expected: "/proxy/1/status/:clusters",
		},
		{
			name:     "Empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "Root path",
			input:    "/",
			expected: "/",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := normalizePath(testCase.input)
			if result != testCase.expected {
				t.Errorf("normalizePath(%q) = %q, want %q", testCase.input, result, testCase.expected)
			}
		})
	}
}

// BenchmarkNormalizePathCached benchmarks normalizePath with cache hits.
func BenchmarkNormalizePathCached(b *testing.B) {
	testPaths := []string{
		"/1/status/c1-de,c2-us",
		"/1/incidents",
		"/1/reachability/c1-de/probes",
		"/1/infrastructure/ssd_usage/period/week",
	}

	for _, path := range testPaths {
		_ = normalizePath(path)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = normalizePath(testPaths[i%len(testPaths)])
	}
}

// BenchmarkNormalizePathUncached benchmarks normalizePath with all cache misses.
func BenchmarkNormalizePathUncached(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = normalizePath(fmt.Sprintf("/1/latency/c%d-de", i))
	}
}
