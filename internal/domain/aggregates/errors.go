package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes aggregate failure semantics across the pipeline.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodeStorageConflict    ErrorCode = "storage_conflict"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Machine-readable rejection reasons carried in Error.Reason.
const (
	ReasonEvidenceRequiredForVerifiedOrRejected = "CLAIM_EVIDENCE_REQUIRED_FOR_VERIFIED_OR_REJECTED"
	ReasonOnlyCandidateLowWithoutEvidence       = "ONLY_CANDIDATE_LOW_ALLOWED_WHEN_EVIDENCE_EMPTY"
	ReasonBulletVariantRequiresClaims           = "BULLET_VARIANT_REQUIRES_AT_LEAST_ONE_CLAIM"
	ReasonGR3Violation                          = "GR3_VIOLATION"
	ReasonSomeClaimsNotFound                    = "SOME_CLAIMS_NOT_FOUND"
	ReasonSomeVariantsNotFound                  = "SOME_VARIANTS_NOT_FOUND"
	ReasonNotFound                              = "NOT_FOUND"
)

// Error is the canonical aggregate error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Reason  string
	Message string
	// BackendCode is the opaque storage error code (pg SQLSTATE or sqlite constraint kind).
	BackendCode string
	Details     any
	Cause       error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = e.Reason
	}
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// NewRuleError builds a rejection carrying a machine-readable reason.
// The reason doubles as the message when none is given.
func NewRuleError(code ErrorCode, op, reason, message string, details any) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = reason
	}
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Reason:  reason,
		Message: msg,
		Details: details,
	}
}

// Wrap annotates an existing error with aggregate error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// AsError extracts the aggregate error from err's chain.
func AsError(err error) (*Error, bool) {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return nil, false
	}
	return aggErr, true
}

// IsCode checks whether err (or wrapped err) carries the given aggregate code.
func IsCode(err error, code ErrorCode) bool {
	aggErr, ok := AsError(err)
	return ok && aggErr.Code == code
}

// CodeOf extracts the aggregate error code when available.
func CodeOf(err error) ErrorCode {
	aggErr, ok := AsError(err)
	if !ok {
		return ""
	}
	return aggErr.Code
}

// ReasonOf extracts the rejection reason when available.
func ReasonOf(err error) string {
	aggErr, ok := AsError(err)
	if !ok {
		return ""
	}
	return aggErr.Reason
}
