package gateway

import "errors"

var (
	// ErrProvider indicates no usable provider credential is configured or
	// the selected provider could not be constructed.
	ErrProvider = errors.New("no model provider available")
	// ErrEmptyResponse indicates the provider returned no content.
	ErrEmptyResponse = errors.New("model returned an empty response")
)
