package logic

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds surfaced to the API layer. Chain reverts are mapped onto
// these so callers can distinguish "not allowed" from "already exists" from
// plain connectivity trouble.
var (
	// ErrUnauthorized: the caller lacks the minter role on the contract.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrStateConflict: duplicate token id without multiple-mint, or an
	// update against a token that was never minted.
	ErrStateConflict = errors.New("post state conflict")
	// ErrValidation: rejected before any network call.
	ErrValidation = errors.New("invalid input")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// classifyChainError maps revert reasons onto the error taxonomy. Anything
// unrecognized passes through verbatim as a connectivity/state error.
func classifyChainError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "minter") || strings.Contains(msg, "accesscontrol") ||
		strings.Contains(msg, "not authorized") || strings.Contains(msg, "caller is not") {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if strings.Contains(msg, "already exists") || strings.Contains(msg, "nonexistent token") ||
		strings.Contains(msg, "multiple not allowed") {
		return fmt.Errorf("%w: %v", ErrStateConflict, err)
	}
	return err
}
