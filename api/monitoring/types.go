package monitoring

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Status is the health of a cluster or server as reported by the API.
type Status string

// Values reported by the status and incidents endpoints.
const (
	StatusOperational         Status = "operational"
	StatusDegradedPerformance Status = "degraded_performance"
	StatusPartialOutage       Status = "partial_outage"
	StatusMajorOutage         Status = "major_outage"
)

// Known reports whether s is one of the documented status values.
func (s Status) Known() bool {
	switch s {
	case StatusOperational, StatusDegradedPerformance, StatusPartialOutage, StatusMajorOutage:
		return true
	}
	return false
}

// StatusResponse maps each cluster name to its current status.
type StatusResponse struct {
	Status map[string]Status `json:"status" validate:"required"`
}

// IncidentsResponse maps each cluster name to its incidents, oldest first.
type IncidentsResponse struct {
	Incidents map[string][]Incident `json:"incidents" validate:"required,dive,dive"`
}

// Incident is a single timestamped incident entry.
type Incident struct {
	// T is the incident time in milliseconds since the Unix epoch.
	T int64           `json:"t" validate:"required"`
	V IncidentDetails `json:"v"`
}

// IncidentDetails describes an incident.
type IncidentDetails struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body"`
	Status Status `json:"status" validate:"required"`
}

// InventoryResponse lists the servers of the application.
type InventoryResponse struct {
	Inventory []Server `json:"inventory" validate:"required,dive"`
}

// Server is one entry of the inventory.
type Server struct {
	Name      string `json:"name" validate:"required"`
	Region    string `json:"region" validate:"required"`
	IsReplica bool   `json:"is_replica"`
	Cluster   string `json:"cluster" validate:"required"`
}

// DataPoint is one sample of a time series. Both fields must be present on the wire.
type DataPoint struct {
	// T is the sample time in milliseconds since the Unix epoch.
	T int64   `json:"t"`
	V float64 `json:"v"`
}

// UnmarshalJSON decodes a sample and rejects one missing "t" or "v".
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		T *int64   `json:"t"`
		V *float64 `json:"v"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		//nolint:wrapcheck // Wrapped by the caller into a DeserializationError
		return err
	}
	if raw.T == nil {
		return errors.New("data point: missing field \"t\"")
	}
	if raw.V == nil {
		return errors.New("data point: missing field \"v\"")
	}

	p.T = *raw.T
	p.V = *raw.V

	return nil
}

// LatencyResponse holds average search latency series per cluster.
type LatencyResponse struct {
	Metrics LatencyMetrics `json:"metrics"`
}

// LatencyMetrics maps cluster names to latency samples in milliseconds.
type LatencyMetrics struct {
	Latency map[string][]DataPoint `json:"latency" validate:"required,dive,dive"`
}

// IndexingResponse holds indexing time series per cluster.
type IndexingResponse struct {
	Metrics IndexingMetrics `json:"metrics"`
}

// IndexingMetrics maps cluster names to indexing time samples in seconds.
type IndexingMetrics struct {
	Indexing map[string][]DataPoint `json:"indexing" validate:"required,dive,dive"`
}

// InfrastructureResponse holds infrastructure series per server.
// Only the series matching the requested Metric are populated.
type InfrastructureResponse struct {
	Metrics *InfrastructureMetrics `json:"metrics" validate:"required"`
}

// InfrastructureMetrics maps server names to samples, one map per metric.
type InfrastructureMetrics struct {
	AvgBuildTime     map[string][]DataPoint `json:"avg_build_time,omitempty" validate:"omitempty,dive,dive"`
	SSDUsage         map[string][]DataPoint `json:"ssd_usage,omitempty" validate:"omitempty,dive,dive"`
	RAMSearchUsage   map[string][]DataPoint `json:"ram_search_usage,omitempty" validate:"omitempty,dive,dive"`
	RAMIndexingUsage map[string][]DataPoint `json:"ram_indexing_usage,omitempty" validate:"omitempty,dive,dive"`
	CPUUsage         map[string][]DataPoint `json:"cpu_usage,omitempty" validate:"omitempty,dive,dive"`
}

// ReachabilityResponse maps each cluster to the reachability of every probe.
// On the wire it is a bare object: {"c1-de": {"probe-name": true}}.
type ReachabilityResponse struct {
	Clusters map[string]map[string]bool `validate:"required"`
}

// UnmarshalJSON decodes the bare cluster object into Clusters.
func (r *ReachabilityResponse) UnmarshalJSON(data []byte) error {
	//nolint:wrapcheck // Wrapped by the caller into a DeserializationError
	return json.Unmarshal(data, &r.Clusters)
}

// MarshalJSON encodes Clusters as the bare object the API returns.
func (r ReachabilityResponse) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // Plain passthrough of the standard encoder
	return json.Marshal(r.Clusters)
}
