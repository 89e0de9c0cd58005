// Application PDF HTTP handlers.
//
// This file exposes the admin endpoint for re-delivering a stored life
// insurance application as a PDF:
//   - POST /applications/resend-pdf
//
// The endpoint reports per-recipient outcomes: the overall operation
// succeeds when at least one of the advisor/internal sends went through.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crestview-advisors/go-intake-backend/internal/services"
)

// ResendPDFRequest is the JSON payload for re-sending an application PDF.
type ResendPDFRequest struct {
	// ApplicationID identifies the stored application to render and send.
	ApplicationID string `json:"applicationId" example:"7b8f0a3e-2f64-4f44-9f3e-6d1de0b3a111"`
}

// ResendPDFResponse reports the aggregate and per-recipient outcome.
type ResendPDFResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Results []services.RecipientResult `json:"results"`
}

// ResendApplicationPDF godoc
// @ID          resendApplicationPDF
// @Summary     Re-send a life insurance application PDF
// @Description Regenerates the application PDF and delivers it to the assigned advisor and the internal applications inbox.
// @Tags        Applications
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ResendPDFRequest  true  "Application reference"
//
// @Success     200  {object} handlers.ResendPDFResponse
// @Failure     400  {object} map[string]string "applicationId is required"
// @Failure     404  {object} map[string]string "Application not found"
// @Failure     500  {object} handlers.ResendPDFResponse "All deliveries failed"
// @Router      /applications/resend-pdf [post]
func (h *Handlers) ResendApplicationPDF(c *gin.Context) {
	var req ResendPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ApplicationID) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "applicationId is required"})
		return
	}

	res, err := h.appSvc.ResendPDF(c.Request.Context(), strings.TrimSpace(req.ApplicationID))
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if !res.Success {
		status = http.StatusInternalServerError
	}
	ok(c, status, ResendPDFResponse{
		Success: res.Success,
		Message: res.Message,
		Results: res.Results,
	})
}
