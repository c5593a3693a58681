// Package monitoring provides a Go client for the Algolia Monitoring API v1.
//
// The Monitoring API (https://status.algolia.com) reports the health of Algolia
// clusters: current status, incidents, server inventory, search latency,
// indexing time, probe reachability and infrastructure metrics.
//
// # Authentication
//
// Every request carries the X-Algolia-API-Key and X-Algolia-Application-Id
// headers. Both values are required by New and NewWithConfig and are never
// logged.
//
// # Filters
//
// Most methods accept a list of cluster names. A nil or empty list queries
// every cluster; otherwise the names are comma-joined in the given order.
// GetInventory sends the list as the clusters query parameter, the other
// methods as a path segment.
//
// # Errors
//
// Failures are classified as *TransportError (the request never produced a
// response), *HTTPError (non-2xx status) or *DeserializationError (a 2xx body
// that does not match the expected schema):
//
//	status, err := client.GetStatus(ctx, []string{"c1-de"})
//	var httpErr *monitoring.HTTPError
//	if errors.As(err, &httpErr) {
//	    log.Printf("API returned %d: %s", httpErr.StatusCode, httpErr.Reason)
//	}
//
// The client does not retry, cache or rate limit. Each call is one round trip
// bounded only by the caller's context unless ClientConfig.Timeout is set.
//
// # Example Usage
//
//	client, err := monitoring.New("your-api-key", "your-app-id")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := client.GetStatus(context.Background(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for cluster, state := range status.Status {
//	    fmt.Printf("%s: %s\n", cluster, state)
//	}
//
// # Custom Configuration
//
//	client, err := monitoring.NewWithConfig(&monitoring.ClientConfig{
//	    APIKey:        "your-api-key",
//	    ApplicationID: "your-app-id",
//	    Timeout:       10 * time.Second,
//	    Doer:          transport.NewRestyDoer(restyClient),
//	})
package monitoring
