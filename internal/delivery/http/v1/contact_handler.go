package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// ContactSubmissionResponse tells the page what happened and whether to clear the form.
type ContactSubmissionResponse struct {
	Result    domain.SubmissionResult `json:"result" swaggertype:"string" enums:"success,validation_failed,dispatch_failed"`
	ResetForm bool                    `json:"reset_form"`
	Errors    []validation.FieldError `json:"errors,omitempty"`
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the form and relays it to EmailJS in a single attempt.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactFormInput  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactSubmissionResponse}
// @Failure      400      {object}  response.Response{data=ContactSubmissionResponse}
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response{data=ContactSubmissionResponse}
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactFormInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.contactUC.Submit(c.Request.Context(), &req)
	body := ContactSubmissionResponse{
		Result:    result,
		ResetForm: result.ResetsForm(),
	}

	switch result {
	case domain.SubmissionSuccess:
		response.Success(c, http.StatusOK, "Message sent successfully!", body)

	case domain.SubmissionValidationFailed:
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			body.Errors = vErr.Fields
		}
		security.DefaultLogger().LogValidationFailed(
			c.Request.Context(),
			req.Email,
			c.ClientIP(),
			c.GetString(middleware.RequestIDKey),
			lo.Map(body.Errors, func(f validation.FieldError, _ int) string { return f.Field }),
		)
		response.Fail(c, http.StatusBadRequest, "Please fill in all fields.", body)

	default:
		// cause already logged by the usecase
		body.Result = domain.SubmissionDispatchFailed
		response.Fail(c, http.StatusBadGateway, "Failed to send message. Please try again.", body)
	}
}
