package audacity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the scripting channel.
var (
	// ErrNotConnected indicates a dispatch was attempted on a closed client.
	ErrNotConnected = errors.New("not connected")

	// ErrTimeout indicates a command timed out waiting for a reply.
	ErrTimeout = errors.New("command timed out")

	// ErrPipeNotFound indicates the script pipes do not exist. Audacity is
	// either not running or was started without mod-script-pipe enabled.
	ErrPipeNotFound = errors.New("audacity script pipe not found")
)

// ValidationError reports a command parameter that failed validation before
// dispatch. Nothing is written to the pipe when validation fails.
type ValidationError struct {
	Command string   // scripting command name
	Param   string   // parameter name
	Value   string   // the rejected value
	Allowed []string // allowed values, when the parameter is an enum
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: invalid %s %q (allowed: %s)",
			e.Command, e.Param, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: invalid %s %q", e.Command, e.Param, e.Value)
}

// ProtocolError reports a reply that could not be parsed, typically because
// the status line was missing or garbled.
type ProtocolError struct {
	Reply string // the offending reply text
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed reply from audacity: %q", e.Reply)
}

// ConnectionError represents a failure on the pipe channel itself.
type ConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("connection failed: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a new connection error.
func NewConnectionError(message string, cause error) error {
	return &ConnectionError{Message: message, Cause: cause}
}
