// Package provider holds the HTTP clients for the external exchange-rate and
// price-history services.
package provider

import (
	"errors"
	"fmt"
)

// ErrSymbolNotFound is returned when a provider has no series for a symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// UpstreamError describes a network, HTTP or payload fault reported by an
// external provider.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
