// Form notification HTTP handlers.
//
// This file exposes the public form intake endpoint:
//   - POST /forms/notifications  (validate, store, and dispatch a submission)
//
// Handlers are transport-thin: they validate input, delegate to application
// services, and translate service errors into HTTP results. Validation
// failures never reach storage or email.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
	"github.com/crestview-advisors/go-intake-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// IntakeService defines the form intake pipeline consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type IntakeService interface {
	// Process persists a validated submission and dispatches its emails.
	Process(ctx context.Context, req services.IntakeRequest) (*services.IntakeResult, error)
}

// ApplicationService defines the application PDF delivery operations.
type ApplicationService interface {
	// ResendPDF regenerates and re-delivers the application PDF.
	ResendPDF(ctx context.Context, applicationID string) (*services.ResendResult, error)
}

// Handlers groups the HTTP endpoints for form intake and PDF delivery.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	intakeSvc IntakeService
	appSvc    ApplicationService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(intakeSvc IntakeService, appSvc ApplicationService) *Handlers {
	return &Handlers{intakeSvc: intakeSvc, appSvc: appSvc}
}

//
// DTOs
//

// NotificationRequest is the JSON payload for a form submission.
type NotificationRequest struct {
	// FormType names the submitting form; it must be in the allow-list.
	FormType string `json:"formType" binding:"required" example:"contact-inquiry"`
	// FormData is the raw key/value payload from the form.
	FormData map[string]any `json:"formData" binding:"required"`
	// RecipientEmail optionally overrides the default internal alert inbox.
	RecipientEmail string `json:"recipientEmail" binding:"omitempty,email,max=255" example:"desk@crestviewadvisors.com"`
	// AdditionalRecipients are up to five extra alert recipients.
	AdditionalRecipients []string `json:"additionalRecipients" binding:"omitempty,max=5,dive,required,email"`
}

// NotificationResponse is the success envelope for an accepted submission.
type NotificationResponse struct {
	Success      bool           `json:"success"`
	Data         map[string]any `json:"data"`
	SubmissionID string         `json:"submissionId"`
}

// jsonFieldNames maps binding struct fields to their wire names for the
// per-field error report.
var jsonFieldNames = map[string]string{
	"FormType":             "formType",
	"FormData":             "formData",
	"RecipientEmail":       "recipientEmail",
	"AdditionalRecipients": "additionalRecipients",
}

// bindingDetails flattens gin/validator binding errors into the
// field -> messages map of the 400 envelope.
func bindingDetails(err error) map[string][]string {
	details := make(map[string][]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = []string{"must be valid JSON"}
		return details
	}
	for _, fe := range verrs {
		// Dive errors name the slice element ("AdditionalRecipients[1]");
		// report them against the field itself.
		name := fe.StructField()
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		field := jsonFieldNames[name]
		if field == "" {
			field = name
		}
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "max":
			msg = fmt.Sprintf("must not exceed %s", fe.Param())
		default:
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		details[field] = append(details[field], msg)
	}
	return details
}

// SendFormNotification godoc
// @ID          sendFormNotification
// @Summary     Submit a form for notification
// @Description Validates a form submission, stores it, sends the internal lead alert, and conditionally sends a prospect confirmation.
// @Tags        Forms
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.NotificationRequest  true  "Form submission payload"
//
// @Success     200  {object} handlers.NotificationResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid request data"
// @Failure     429  {object} handlers.ErrorResponse "Rate limit exceeded"
// @Failure     500  {object} handlers.ErrorResponse "Internal notification failed"
// @Router      /forms/notifications [post]
func (h *Handlers) SendFormNotification(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFail(c, bindingDetails(err))
		return
	}

	formType, valid := domain.ParseFormType(req.FormType)
	if !valid {
		validationFail(c, map[string][]string{
			"formType": {"must be one of the supported form types"},
		})
		return
	}

	res, err := h.intakeSvc.Process(c.Request.Context(), services.IntakeRequest{
		FormType:             formType,
		FormData:             domain.FormData(req.FormData),
		RecipientEmail:       req.RecipientEmail,
		AdditionalRecipients: req.AdditionalRecipients,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	ok(c, http.StatusOK, NotificationResponse{
		Success: true,
		Data: map[string]any{
			"formType":         formType.String(),
			"confirmationSent": res.ConfirmationSent,
		},
		SubmissionID: res.SubmissionID,
	})
}
