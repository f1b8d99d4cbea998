package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid plugin input")
	ErrCredentialResolution = errors.New("gateway credentials not configured")
	ErrTokenResolution      = errors.New("payment method token not registered")
	ErrStore                = errors.New("store failure")
	ErrGatewayTransport     = errors.New("payment gateway unreachable")
	ErrGatewayDeclined      = errors.New("payment gateway declined request")
	ErrAccountLookup        = errors.New("could not retrieve account")
	ErrNameSplit            = errors.New("could not split account name")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// PaymentPluginError is the fatal error returned to the payment orchestrator.
//
// Err chains one of the sentinels above with the underlying cause, so callers
// classify with errors.Is and reach the cause with errors.Unwrap.
type PaymentPluginError struct {
	Op             string
	Message        string
	GatewayMessage string
	Err            error
}

func (e *PaymentPluginError) Error() string {
	msg := e.Op + ": " + e.Message
	if e.GatewayMessage != "" {
		msg += " (gateway: " + e.GatewayMessage + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PaymentPluginError) Unwrap() error { return e.Err }

func newPluginError(op, message string, kind error, cause error) *PaymentPluginError {
	err := kind
	if cause != nil {
		err = fmt.Errorf("%w: %w", kind, cause)
	}
	return &PaymentPluginError{Op: op, Message: message, Err: err}
}

func invalidInput(op, format string, args ...any) *PaymentPluginError {
	msg := fmt.Sprintf(format, args...)
	return &PaymentPluginError{Op: op, Message: msg, Err: fmt.Errorf("%w: %s", ErrInvalidInput, msg)}
}
