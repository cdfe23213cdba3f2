// Package errors defines the closed taxonomy of request-level failures.
// Every error the API reports to a client is one of these variants; the
// HTTP error responder matches on the kind and serializes the message list.
package errors

import (
	"net/http"
	"strings"
)

// Kind tags an Error with its failure class.
type Kind int

const (
	// KindValidation marks malformed or missing input. Maps to 400.
	KindValidation Kind = iota

	// KindAuthentication marks missing/invalid credentials or an
	// unauthorized action. Maps to 401.
	KindAuthentication

	// KindNotFound marks a referenced entity that does not exist. Maps to 404.
	KindNotFound
)

// Error is a tagged request failure carrying one or more client-facing messages.
type Error struct {
	kind     Kind
	messages []string
}

// NewValidation creates a validation error aggregating all failed rules.
func NewValidation(messages ...string) *Error {
	return &Error{kind: KindValidation, messages: messages}
}

// NewAuthentication creates an authentication/authorization error.
func NewAuthentication(message string) *Error {
	return &Error{kind: KindAuthentication, messages: []string{message}}
}

// NewNotFound creates a not-found error.
func NewNotFound(message string) *Error {
	return &Error{kind: KindNotFound, messages: []string{message}}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return strings.Join(e.messages, "; ")
}

// Kind returns the failure class tag.
func (e *Error) Kind() Kind {
	return e.kind
}

// HTTPCode returns the status code for the failure class.
func (e *Error) HTTPCode() int {
	switch e.kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Serialize returns the messages in the uniform wire shape.
func (e *Error) Serialize() []Message {
	out := make([]Message, 0, len(e.messages))
	for _, m := range e.messages {
		out = append(out, Message{Message: m})
	}

	return out
}

// Message is a single client-facing error message.
type Message struct {
	Message string `json:"message"`
}

// Envelope is the uniform error response body.
type Envelope struct {
	Errors []Message `json:"errors"`
}
