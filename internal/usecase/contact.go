package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/emailjs"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender      emailjs.Sender
	credentials emailjs.Credentials
	validate    *validator.Validate
	strictEmail bool
}

// NewContactUsecase creates a new contact usecase. Credentials are copied
// in and never change afterwards.
func NewContactUsecase(sender emailjs.Sender, credentials emailjs.Credentials, validate *validator.Validate, strictEmail bool) domain.ContactUsecase {
	return &contactUsecase{
		sender:      sender,
		credentials: credentials,
		validate:    validate,
		strictEmail: strictEmail,
	}
}

// Submit validates the form and sends it to EmailJS in a single attempt.
func (uc *contactUsecase) Submit(ctx context.Context, input *domain.ContactFormInput) (domain.SubmissionResult, error) {
	if input == nil {
		input = &domain.ContactFormInput{}
	}

	if err := ValidateContactForm(uc.validate, input, uc.strictEmail); err != nil {
		return domain.SubmissionValidationFailed, err
	}

	req := emailjs.NewRequest(uc.credentials, TemplateParamsFromForm(input))
	if err := uc.dispatch(ctx, req); err != nil {
		logDispatchFailure(err)
		return domain.SubmissionDispatchFailed, err
	}

	logger.Log.Infow("Contact message sent", "service_id", uc.credentials.ServiceID)
	return domain.SubmissionSuccess, nil
}

// dispatch folds every failure, panics included, into ErrDispatchFailed.
func (uc *contactUsecase) dispatch(ctx context.Context, req emailjs.SendRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Mark(errors.Newf("panic during email dispatch: %v", r), domain.ErrDispatchFailed)
		}
	}()

	if err := uc.sender.Send(ctx, req); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to send contact email"), domain.ErrDispatchFailed)
	}
	return nil
}

// ValidateContactForm checks that every field is present after trimming and,
// when strictEmail is set, that the email parses. It never mutates input.
func ValidateContactForm(v *validator.Validate, input *domain.ContactFormInput, strictEmail bool) error {
	var fields []validation.FieldError

	if err := v.Struct(input); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return errors.Mark(errors.Wrap(err, "contact form validation"), domain.ErrValidationFailed)
		}
		fields = validation.FormatValidationErrors(err)
	}

	if strictEmail && strings.TrimSpace(input.Email) != "" {
		if err := v.Var(strings.TrimSpace(input.Email), "email"); err != nil {
			fields = append(fields, validation.FieldError{
				Field:   "email",
				Message: fmt.Sprintf("%s: is not a valid email address", validation.FieldLabels["email"]),
			})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return errors.Mark(&domain.ValidationError{Fields: fields}, domain.ErrValidationFailed)
}

// TemplateParamsFromForm renames form fields to the template variables the
// EmailJS contact template expects. Values are passed through as entered.
func TemplateParamsFromForm(input *domain.ContactFormInput) emailjs.TemplateParams {
	return emailjs.TemplateParams{
		FromName:    input.Name,
		FromEmail:   input.Email,
		FromPhone:   input.Phone,
		FromAddress: input.Address,
		Message:     input.Message,
	}
}

func logDispatchFailure(err error) {
	var statusErr *emailjs.StatusError
	if errors.As(err, &statusErr) {
		logger.Log.Warnw("EmailJS rejected contact message",
			"status", statusErr.StatusCode,
			"body", statusErr.Body,
		)
		return
	}
	logger.Log.Errorw("EmailJS request failed", "error", err)
}
