package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/emailjs"
	"go-portfolio-backend/pkg/validation"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, req emailjs.SendRequest) error {
	return m.Called(ctx, req).Error(0)
}

var testCredentials = emailjs.Credentials{
	ServiceID:  "service_test",
	TemplateID: "template_test",
	UserID:     "user_test",
}

func validForm() *domain.ContactFormInput {
	return &domain.ContactFormInput{
		Name:    "Jane",
		Email:   "jane@x.com",
		Phone:   "555",
		Address: "1 Main St",
		Message: "hi",
	}
}

func TestContactSubmitValidation(t *testing.T) {
	blankers := map[string]func(f *domain.ContactFormInput, v string){
		"name":    func(f *domain.ContactFormInput, v string) { f.Name = v },
		"email":   func(f *domain.ContactFormInput, v string) { f.Email = v },
		"phone":   func(f *domain.ContactFormInput, v string) { f.Phone = v },
		"address": func(f *domain.ContactFormInput, v string) { f.Address = v },
		"message": func(f *domain.ContactFormInput, v string) { f.Message = v },
	}

	for field, blank := range blankers {
		for _, value := range []string{"", "   ", "\n\t"} {
			t.Run("Should reject blank "+field, func(t *testing.T) {
				sender := new(MockSender)
				uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

				form := validForm()
				blank(form, value)

				result, err := uc.Submit(context.Background(), form)
				assert.Equal(t, domain.SubmissionValidationFailed, result)
				assert.True(t, errors.Is(err, domain.ErrValidationFailed))

				var vErr *domain.ValidationError
				require.True(t, errors.As(err, &vErr))
				require.Len(t, vErr.Fields, 1)
				assert.Equal(t, field, vErr.Fields[0].Field)

				sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			})
		}
	}

	t.Run("Should report every blank field of an empty form", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

		result, err := uc.Submit(context.Background(), nil)
		assert.Equal(t, domain.SubmissionValidationFailed, result)

		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields, 5)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestValidateContactFormIsIdempotent(t *testing.T) {
	v := validation.New()

	form := validForm()
	before := *form
	assert.NoError(t, usecase.ValidateContactForm(v, form, false))
	assert.NoError(t, usecase.ValidateContactForm(v, form, false))
	assert.Equal(t, before, *form)

	form.Phone = "  "
	first := usecase.ValidateContactForm(v, form, false)
	second := usecase.ValidateContactForm(v, form, false)
	assert.Error(t, first)
	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, "  ", form.Phone)
}

func TestValidateContactFormStrictEmail(t *testing.T) {
	v := validation.New()
	form := validForm()
	form.Email = "not-an-email"

	assert.NoError(t, usecase.ValidateContactForm(v, form, false))

	err := usecase.ValidateContactForm(v, form, true)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []validation.FieldError{{Field: "email", Message: "Email: is not a valid email address"}}, vErr.Fields)
}

func TestContactSubmitDispatch(t *testing.T) {
	expected := emailjs.SendRequest{
		ServiceID:  "service_test",
		TemplateID: "template_test",
		UserID:     "user_test",
		TemplateParams: emailjs.TemplateParams{
			FromName:    "Jane",
			FromEmail:   "jane@x.com",
			FromPhone:   "555",
			FromAddress: "1 Main St",
			Message:     "hi",
		},
	}

	t.Run("Should succeed when the provider accepts", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, expected).Return(nil).Once()
		uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

		result, err := uc.Submit(context.Background(), validForm())
		assert.NoError(t, err)
		assert.Equal(t, domain.SubmissionSuccess, result)
		assert.True(t, result.ResetsForm())
		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should fail on a provider status error", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, expected).Return(&emailjs.StatusError{StatusCode: 500, Body: "oops"}).Once()
		uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

		result, err := uc.Submit(context.Background(), validForm())
		assert.Equal(t, domain.SubmissionDispatchFailed, result)
		assert.False(t, result.ResetsForm())
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))

		var statusErr *emailjs.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, 500, statusErr.StatusCode)
		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should fail on a transport error", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, expected).Return(errors.New("dial tcp: timeout")).Once()
		uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

		result, err := uc.Submit(context.Background(), validForm())
		assert.Equal(t, domain.SubmissionDispatchFailed, result)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
		assert.False(t, errors.Is(err, domain.ErrValidationFailed))
	})

	t.Run("Should fold a panicking sender into a dispatch failure", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			panic("malformed response")
		}).Return(nil)
		uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

		var (
			result domain.SubmissionResult
			err    error
		)
		assert.NotPanics(t, func() {
			result, err = uc.Submit(context.Background(), validForm())
		})
		assert.Equal(t, domain.SubmissionDispatchFailed, result)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
		assert.Contains(t, err.Error(), "malformed response")
	})

	t.Run("Should pass values through untrimmed", func(t *testing.T) {
		form := validForm()
		form.Message = "  hello there \n"

		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(req emailjs.SendRequest) bool {
			return req.TemplateParams.Message == "  hello there \n"
		})).Return(nil).Once()
		uc := usecase.NewContactUsecase(sender, testCredentials, validation.New(), false)

		result, err := uc.Submit(context.Background(), form)
		assert.NoError(t, err)
		assert.Equal(t, domain.SubmissionSuccess, result)
		sender.AssertExpectations(t)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestContactSubmitOverHTTP(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		err      error
		expected domain.SubmissionResult
	}{
		{name: "200", status: http.StatusOK, expected: domain.SubmissionSuccess},
		{name: "500", status: http.StatusInternalServerError, expected: domain.SubmissionDispatchFailed},
		{name: "transport error", err: errors.New("connection reset"), expected: domain.SubmissionDispatchFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var posts []*http.Request
			var body map[string]json.RawMessage

			transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
				posts = append(posts, r)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				if tc.err != nil {
					return nil, tc.err
				}
				return &http.Response{
					StatusCode: tc.status,
					Body:       io.NopCloser(strings.NewReader("")),
					Header:     make(http.Header),
				}, nil
			})

			client := emailjs.NewClient(emailjs.WithHTTPClient(&http.Client{Transport: transport}))
			uc := usecase.NewContactUsecase(client, testCredentials, validation.New(), false)

			result, _ := uc.Submit(context.Background(), validForm())
			assert.Equal(t, tc.expected, result)

			require.Len(t, posts, 1)
			assert.Equal(t, http.MethodPost, posts[0].Method)
			assert.Equal(t, emailjs.SendEndpoint, posts[0].URL.String())

			var params map[string]string
			require.NoError(t, json.Unmarshal(body["template_params"], &params))
			assert.Equal(t, map[string]string{
				"from_name":    "Jane",
				"from_email":   "jane@x.com",
				"from_phone":   "555",
				"from_address": "1 Main St",
				"message":      "hi",
			}, params)
		})
	}
}

func TestTemplateParamsFromForm(t *testing.T) {
	params := usecase.TemplateParamsFromForm(validForm())
	assert.Equal(t, emailjs.TemplateParams{
		FromName:    "Jane",
		FromEmail:   "jane@x.com",
		FromPhone:   "555",
		FromAddress: "1 Main St",
		Message:     "hi",
	}, params)
}
