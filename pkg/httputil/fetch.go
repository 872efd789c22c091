package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mkessel/cumulus/pkg/errors"
)

const (
	// maxBodySize caps downloaded inputs. Word clouds are built from prose,
	// not bulk data; anything larger is almost certainly a mistake.
	maxBodySize = 10 << 20

	requestTimeout = 30 * time.Second
)

var defaultClient = &http.Client{Timeout: requestTimeout}

// IsURL reports whether path names a remote http(s) input.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Fetch downloads the body at url, retrying transient failures with
// exponential backoff. Server errors (5xx) and rate limiting (429) are
// retried; client errors are returned immediately with a pipeline error code.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	err := RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid url %s", url)
		}

		resp, err := defaultClient.Do(req)
		if err != nil {
			return &RetryableError{Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to read
		case resp.StatusCode == http.StatusNotFound:
			return errors.New(errors.ErrCodeNotFound, "%s returned 404", url)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return &RetryableError{Err: fmt.Errorf("%s returned status %d", url, resp.StatusCode)}
		default:
			return errors.New(errors.ErrCodeInvalidInput, "%s returned status %d", url, resp.StatusCode)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
		if err != nil {
			return &RetryableError{Err: err}
		}
		if len(data) > maxBodySize {
			return errors.New(errors.ErrCodeInvalidInput, "%s exceeds the %d byte input limit", url, maxBodySize)
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
