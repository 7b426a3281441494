// Package usecase contains application-level services.
package usecase

import (
	"errors"
	"fmt"
)

// ErrUnconfigured is returned when the feed URL is still the placeholder.
var ErrUnconfigured = errors.New("feed url is not configured")

// Reason classifies a fetch failure.
type Reason string

const (
	ReasonNetwork Reason = "network"
	ReasonStatus  Reason = "status"
	ReasonDecode  Reason = "decode"
)

// FetchError reports a failed fetch attempt.
type FetchError struct {
	Reason     Reason
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Reason {
	case ReasonStatus:
		return fmt.Sprintf("feed responded with HTTP %d", e.StatusCode)
	case ReasonDecode:
		return fmt.Sprintf("decode feed: %v", e.Err)
	default:
		return fmt.Sprintf("request feed: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
