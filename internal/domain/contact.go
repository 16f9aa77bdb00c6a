package domain

import (
	"context"

	"github.com/cockroachdb/errors"

	"go-portfolio-backend/pkg/validation"
)

// ContactFormInput represents a contact form submission.
// Every field must be non-empty after trimming whitespace.
type ContactFormInput struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// SubmissionResult is the outcome reported back to the page after a submit.
type SubmissionResult int

const (
	SubmissionSuccess SubmissionResult = iota + 1
	SubmissionValidationFailed
	SubmissionDispatchFailed
)

func (r SubmissionResult) String() string {
	switch r {
	case SubmissionSuccess:
		return "success"
	case SubmissionValidationFailed:
		return "validation_failed"
	case SubmissionDispatchFailed:
		return "dispatch_failed"
	default:
		return "unknown"
	}
}

// MarshalText renders the result as its string form in JSON.
func (r SubmissionResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ResetsForm reports whether the page should clear the form.
// Failed submissions keep the entered values so the user can resubmit.
func (r SubmissionResult) ResetsForm() bool {
	return r == SubmissionSuccess
}

var (
	// ErrValidationFailed marks errors for submissions rejected before dispatch.
	ErrValidationFailed = errors.New("contact submission failed validation")
	// ErrDispatchFailed marks errors for submissions the email provider did not accept.
	ErrDispatchFailed = errors.New("contact submission dispatch failed")
)

// ValidationError lists the offending fields of a rejected submission.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return "contact form has invalid fields"
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the form and dispatches it to the email provider.
	// The returned error carries the cause for logging; the result is what
	// the caller shows the user.
	Submit(ctx context.Context, input *ContactFormInput) (SubmissionResult, error)
}
