// Package services – ApplicationService
//
// This file implements the admin "resend application PDF" flow: fetch the
// stored life insurance application, resolve the assigned advisor's email
// (directly from the record, then by directory ID, then by a name-derived
// slug), render the full application PDF, and deliver it to the advisor and
// the fixed internal applications inbox as two independent sends. Each
// recipient's outcome is recorded separately; the operation succeeds when at
// least one delivery went through.
package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
	"github.com/crestview-advisors/go-intake-backend/internal/mail"
	"github.com/crestview-advisors/go-intake-backend/internal/pdf"
	"github.com/crestview-advisors/go-intake-backend/internal/repo"
)

// Recipient labels used in per-recipient results.
const (
	RecipientAdvisor = "advisor"
	RecipientLeads   = "leads"
)

// RecipientResult records the outcome of one delivery attempt.
type RecipientResult struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// ResendResult is the aggregate outcome of a resend operation.
type ResendResult struct {
	Success bool
	Message string
	Results []RecipientResult
}

// ApplicationService implements the application PDF delivery use-case.
type ApplicationService struct {
	// DB is the database handle for application and advisor lookups.
	DB *gorm.DB
	// Sender delivers outbound email.
	Sender mail.Sender
	// ApplicationsInbox is the fixed internal recipient that always receives
	// a copy of the PDF.
	ApplicationsInbox string
}

// ResendPDF regenerates and re-delivers the PDF for applicationID.
//
// Returns ErrApplicationNotFound when no such application exists. An
// unresolvable advisor email is not an error: delivery degrades to the
// internal inbox only and the result message says so. The two sends are
// independent; neither aborts the other, and neither is ever retried.
func (s *ApplicationService) ResendPDF(ctx context.Context, applicationID string) (*ResendResult, error) {
	app, err := repo.GetApplication(ctx, s.DB, applicationID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	advisorEmail := s.resolveAdvisorEmail(ctx, app)

	doc, err := pdf.GenerateBase64(app)
	if err != nil {
		return nil, fmt.Errorf("render application pdf: %w", err)
	}

	applicant := strings.TrimSpace(app.ApplicantName)
	if applicant == "" {
		applicant = "Unknown Applicant"
	}
	msg := mail.Message{
		Subject: fmt.Sprintf("Life Insurance Application - %s", applicant),
		HTML: fmt.Sprintf(
			"<p>Attached is the completed life insurance application for <strong>%s</strong> (application %s).</p>",
			html.EscapeString(applicant), html.EscapeString(app.ID)),
		Attachments: []mail.Attachment{{
			Filename:    fmt.Sprintf("life-insurance-application-%s.pdf", app.ID),
			Content:     doc,
			ContentType: "application/pdf",
		}},
	}

	res := &ResendResult{}
	advisorOK := false

	if advisorEmail != "" {
		m := msg
		m.To = []string{advisorEmail}
		if err := s.Sender.Send(ctx, m); err != nil {
			log.Error().Err(err).Str("application_id", app.ID).Msg("advisor PDF delivery failed")
			res.Results = append(res.Results, RecipientResult{Recipient: RecipientAdvisor, Error: err.Error()})
		} else {
			advisorOK = true
			res.Results = append(res.Results, RecipientResult{Recipient: RecipientAdvisor, Success: true})
		}
	}

	// The internal inbox always gets a copy, regardless of the advisor send.
	leadsOK := false
	m := msg
	m.To = []string{s.ApplicationsInbox}
	if err := s.Sender.Send(ctx, m); err != nil {
		log.Error().Err(err).Str("application_id", app.ID).Msg("internal PDF delivery failed")
		res.Results = append(res.Results, RecipientResult{Recipient: RecipientLeads, Error: err.Error()})
	} else {
		leadsOK = true
		res.Results = append(res.Results, RecipientResult{Recipient: RecipientLeads, Success: true})
	}

	res.Success = advisorOK || leadsOK
	switch {
	case advisorOK:
		name := strings.TrimSpace(app.AdvisorName)
		if name == "" {
			name = advisorEmail
		}
		res.Message = fmt.Sprintf("Application PDF sent to advisor %s", name)
	case advisorEmail == "" && leadsOK:
		res.Message = "Advisor email unavailable; application PDF sent to the internal applications inbox only"
	case leadsOK:
		res.Message = "Advisor delivery failed; application PDF sent to the internal applications inbox only"
	default:
		res.Message = "Failed to deliver the application PDF to any recipient"
	}
	return res, nil
}

// resolveAdvisorEmail walks the resolution chain: the email stored on the
// application record, then the directory entry for AdvisorID, then the
// directory entry for the slug derived from AdvisorName. Returns "" when
// every step fails; callers treat that as a soft degradation.
func (s *ApplicationService) resolveAdvisorEmail(ctx context.Context, app *domain.LifeInsuranceApplication) string {
	if e := strings.TrimSpace(app.AdvisorEmail); e != "" {
		return e
	}

	if app.AdvisorID != nil && *app.AdvisorID != "" {
		adv, err := repo.GetAdvisorByID(ctx, s.DB, *app.AdvisorID)
		if err == nil {
			return adv.Email
		}
		log.Warn().Err(err).Str("advisor_id", *app.AdvisorID).Msg("advisor lookup by id failed; trying slug")
	}

	if slug := pdf.SlugifyName(app.AdvisorName); slug != "" {
		adv, err := repo.GetAdvisorBySlug(ctx, s.DB, slug)
		if err == nil {
			return adv.Email
		}
		log.Warn().Err(err).Str("slug", slug).Msg("advisor lookup by slug failed")
	}

	return ""
}
