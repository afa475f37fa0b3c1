package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// Fixed messages produced by ClassifyError for statuses with no useful
// upstream detail to relay.
const (
	msgInvalidAPIKey = "Invalid API key. Check that GEMINI_API_KEY is set to a valid Gemini API key."
	msgModelNotFound = "Model not found. Use list_models to see the available model identifiers."
	msgRateLimited   = "Rate limit exceeded. Wait a moment before retrying."
	msgServerError   = "The API returned an internal server error. Try again later."
	msgUnavailable   = "The service is temporarily unavailable. Try again later."
	msgTimeout       = "Request timed out. Image generation can take a while; try again."
	msgNetwork       = "Could not reach the API. Check your network connection."
)

// APIError is a non-2xx reply from the generateContent endpoint. It
// carries the status code and whatever human-readable message could be
// pulled out of the upstream error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// upstreamError mirrors the error envelope Google APIs wrap failures in.
type upstreamError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	var envelope upstreamError
	_ = json.Unmarshal(body, &envelope)
	return &APIError{
		StatusCode: status,
		Message:    envelope.Error.Message,
	}
}

// ClassifyError maps any failure from the request/transport/extraction
// pipeline to a single human-readable string. The mapping is total:
// whatever comes in, exactly one message comes out.
func ClassifyError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr)
	}

	if isTimeout(err) {
		return msgTimeout
	}
	if isNetwork(err) {
		return msgNetwork
	}

	return "Error: " + err.Error()
}

func classifyStatus(e *APIError) string {
	switch e.StatusCode {
	case 400:
		if e.Message != "" {
			return "Invalid request. " + e.Message
		}
		return "Invalid request. Check the prompt and parameters."
	case 401:
		return msgInvalidAPIKey
	case 403:
		if e.Message != "" {
			return "Access denied. " + e.Message
		}
		return "Access denied. Your API key may not have access to this model."
	case 404:
		return msgModelNotFound
	case 429:
		return msgRateLimited
	case 500:
		return msgServerError
	case 503:
		return msgUnavailable
	default:
		if e.Message != "" {
			return fmt.Sprintf("Request failed with status %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("Request failed with status %d.", e.StatusCode)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetwork(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}
