package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/validation"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Mock Usecases
type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) Submit(ctx context.Context, input *domain.ContactFormInput) (domain.SubmissionResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.SubmissionResult), args.Error(1)
}

type MockPortfolioUC struct {
	mock.Mock
}

func (m *MockPortfolioUC) GetPortfolio(ctx context.Context) (*domain.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioUC) GetSkills(ctx context.Context) (*domain.SkillsSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SkillsSection), args.Error(1)
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

type contactData struct {
	Result    string                  `json:"result"`
	ResetForm bool                    `json:"reset_form"`
	Errors    []validation.FieldError `json:"errors"`
}

func newTestEngine() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	return r, r.Group("/v1")
}

func passThrough(c *gin.Context) { c.Next() }

func postContact(r http.Handler, body string) (*httptest.ResponseRecorder, envelope, contactData) {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	var data contactData
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	if len(env.Data) > 0 {
		_ = json.Unmarshal(env.Data, &data)
	}
	return w, env, data
}

const validBody = `{"name":"Jane","email":"jane@x.com","phone":"555","address":"1 Main St","message":"hi"}`

func TestSubmitContact(t *testing.T) {
	expectedInput := &domain.ContactFormInput{
		Name:    "Jane",
		Email:   "jane@x.com",
		Phone:   "555",
		Address: "1 Main St",
		Message: "hi",
	}

	t.Run("Should return 200 and reset the form on success", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("Submit", mock.Anything, expectedInput).Return(domain.SubmissionSuccess, nil).Once()
		r, v1 := newTestEngine()
		NewContactHandler(v1, uc, passThrough)

		w, env, data := postContact(r, validBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Message sent successfully!", env.Message)
		assert.NotEmpty(t, env.RequestID)
		assert.Equal(t, "success", data.Result)
		assert.True(t, data.ResetForm)
		uc.AssertExpectations(t)
	})

	t.Run("Should return 400 with field errors on validation failure", func(t *testing.T) {
		fields := []validation.FieldError{{Field: "phone", Message: "Phone: is required"}}
		uc := new(MockContactUC)
		uc.On("Submit", mock.Anything, mock.Anything).Return(
			domain.SubmissionValidationFailed,
			errors.Mark(&domain.ValidationError{Fields: fields}, domain.ErrValidationFailed),
		).Once()
		r, v1 := newTestEngine()
		NewContactHandler(v1, uc, passThrough)

		w, env, data := postContact(r, `{"name":"Jane","email":"jane@x.com","phone":" ","address":"1 Main St","message":"hi"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Please fill in all fields.", env.Message)
		assert.Equal(t, "validation_failed", data.Result)
		assert.False(t, data.ResetForm)
		assert.Equal(t, fields, data.Errors)
	})

	t.Run("Should return 502 and keep the form on dispatch failure", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("Submit", mock.Anything, expectedInput).Return(
			domain.SubmissionDispatchFailed,
			errors.Mark(errors.New("emailjs: unexpected status 500"), domain.ErrDispatchFailed),
		).Once()
		r, v1 := newTestEngine()
		NewContactHandler(v1, uc, passThrough)

		w, env, data := postContact(r, validBody)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Failed to send message. Please try again.", env.Message)
		assert.Equal(t, "dispatch_failed", data.Result)
		assert.False(t, data.ResetForm)
		assert.NotContains(t, w.Body.String(), "status 500")
	})

	t.Run("Should reject malformed JSON without calling the usecase", func(t *testing.T) {
		uc := new(MockContactUC)
		r, v1 := newTestEngine()
		NewContactHandler(v1, uc, passThrough)

		w, env, _ := postContact(r, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", env.Message)
		uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Should run the limiter before the handler", func(t *testing.T) {
		uc := new(MockContactUC)
		r, v1 := newTestEngine()
		NewContactHandler(v1, uc, func(c *gin.Context) {
			c.AbortWithStatus(http.StatusTooManyRequests)
		})

		w, _, _ := postContact(r, validBody)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestPortfolioHandler(t *testing.T) {
	t.Run("Should return the portfolio", func(t *testing.T) {
		uc := new(MockPortfolioUC)
		uc.On("GetPortfolio", mock.Anything).Return(&domain.Portfolio{
			Profile: domain.Profile{Name: "Jane Doe"},
		}, nil)
		r, v1 := newTestEngine()
		NewPortfolioHandler(v1, uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/portfolio", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var portfolio domain.Portfolio
		require.NoError(t, json.Unmarshal(env.Data, &portfolio))
		assert.Equal(t, "Jane Doe", portfolio.Profile.Name)
	})

	t.Run("Should hide usecase errors", func(t *testing.T) {
		uc := new(MockPortfolioUC)
		uc.On("GetSkills", mock.Anything).Return(nil, errors.New("assets unreadable"))
		r, v1 := newTestEngine()
		NewPortfolioHandler(v1, uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/portfolio/skills", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "assets unreadable")
	})
}

func TestRouter(t *testing.T) {
	cfg := &config.Config{
		GinMode:                   gin.TestMode,
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 1,
		RateLimitGlobalThreshold:  100,
	}
	contactUC := new(MockContactUC)
	contactUC.On("Submit", mock.Anything, mock.Anything).Return(domain.SubmissionSuccess, nil)

	r := NewRouter(RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: new(MockPortfolioUC),
		HealthUC:    usecase.NewHealthUsecase(false),
		Config:      cfg,
	})

	t.Run("Should serve health with security headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	})

	t.Run("Should rate limit the contact form", func(t *testing.T) {
		first, _, _ := postContact(r, validBody)
		assert.Equal(t, http.StatusOK, first.Code)

		second, _, _ := postContact(r, validBody)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		contactUC.AssertNumberOfCalls(t, "Submit", 1)
	})
}
