package monitoring

import "context"

// MonitoringAPIClient defines the interface for Algolia Monitoring API operations.
// This interface enables consumers to create mock implementations for testing.
//
// Example usage with testify/mock:
//
//	type MockClient struct {
//	    mock.Mock
//	}
//
//	func (m *MockClient) GetStatus(ctx context.Context, clusters []string) (*monitoring.StatusResponse, error) {
//	    args := m.Called(ctx, clusters)
//	    return args.Get(0).(*monitoring.StatusResponse), args.Error(1)
//	}
//
//nolint:revive // MonitoringAPIClient is intentionally explicit to avoid confusion with the Client struct
type MonitoringAPIClient interface {
	// GetStatus returns the status of the given clusters, or of all clusters when none are given.
	GetStatus(ctx context.Context, clusters []string) (*StatusResponse, error)

	// GetIncidents returns the incidents of the given clusters, or of all clusters when none are given.
	GetIncidents(ctx context.Context, clusters []string) (*IncidentsResponse, error)

	// GetInventory returns the servers of the application, optionally restricted to clusters.
	GetInventory(ctx context.Context, clusters []string) (*InventoryResponse, error)

	// GetLatency returns the average search latency of the given clusters.
	GetLatency(ctx context.Context, clusters []string) (*LatencyResponse, error)

	// GetReachability returns the probe reachability of the given clusters.
	GetReachability(ctx context.Context, clusters []string) (*ReachabilityResponse, error)

	// GetIndexingTime returns the indexing time of the given clusters.
	GetIndexingTime(ctx context.Context, clusters []string) (*IndexingResponse, error)

	// GetInfrastructureMetrics returns a server metric over a period of time.
	GetInfrastructureMetrics(ctx context.Context, metric Metric, period Period) (*InfrastructureResponse, error)
}
