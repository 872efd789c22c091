// Package httputil fetches remote text inputs for the cloud pipeline.
//
// # Overview
//
// The pipeline accepts http(s) URLs wherever it accepts a local text file.
// This package provides the plumbing for that:
//
//   - [Fetch]: Download a URL body with retry and a size limit
//   - [Retry]: Automatic retry with exponential backoff
//
// # Retry
//
// [Retry] wraps operations with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Only errors wrapped in [RetryableError] trigger another attempt, so
// permanent failures (404, invalid input) return immediately:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return doRequest()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Request timeout: 30 seconds
//   - Max retries: 3
//   - Base backoff: 1 second
//   - Body limit: 10 MiB
package httputil
