// Package errs defines the error classes shared by every outbound client.
package errs

import "fmt"

// UpstreamError reports a non-success HTTP status from an external API.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

// MalformedResponseError reports a successful response missing an expected field.
type MalformedResponseError struct {
	Service string
	Field   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: response has no %s", e.Service, e.Field)
}

// StorageError wraps a document creation failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "document store: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
