// Package services – IntakeService
//
// This file implements the IntakeService, which carries a validated form
// submission through the write-then-notify pipeline: persist the submission
// (best effort), deliver the internal lead alert (mandatory), mark the
// stored row as emailed, and conditionally deliver a prospect confirmation
// (best effort). The two persistence steps and the alert are deliberately
// decoupled: a storage failure must never cost the firm the lead alert, and
// a confirmation failure must never fail a request whose alert already went
// out.
package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
	"github.com/crestview-advisors/go-intake-backend/internal/mail"
	"github.com/crestview-advisors/go-intake-backend/internal/repo"
	"github.com/crestview-advisors/go-intake-backend/internal/sysutil"
)

// IntakeRequest is a validated submission ready for processing. FormType has
// already passed the allow-list; recipient fields have already passed format
// validation at the transport layer.
type IntakeRequest struct {
	FormType             domain.FormType
	FormData             domain.FormData
	RecipientEmail       string
	AdditionalRecipients []string
}

// IntakeResult reports what the pipeline accomplished for one submission.
type IntakeResult struct {
	SubmissionID     string
	ConfirmationSent bool
}

// IntakeService implements the form intake use-case. The service is
// context-aware and safe for concurrent use.
type IntakeService struct {
	// DB is the database handle used for submission persistence.
	DB *gorm.DB
	// Sender delivers outbound email.
	Sender mail.Sender
	// LeadsInbox is the default recipient for internal lead alerts when the
	// request names no recipient.
	LeadsInbox string
}

// Process runs the write-then-notify pipeline for one validated submission.
//
// Semantics:
//   - The submission row (status "new", email_sent false) is written before
//     any email call. A write failure is logged and the flow continues: the
//     alert matters more than the record.
//   - The internal alert goes to [RecipientEmail or LeadsInbox] plus any
//     additional recipients. A send failure returns ErrAlertSendFailed
//     (wrapped); the caller reports the request as failed.
//   - After the alert succeeds, email_sent flips to true for the stored row
//     (a no-op when the insert failed, since no row exists).
//   - The prospect confirmation is attempted only for eligible form types
//     with a derivable prospect email and first name. When the payload names
//     an advisor the body mentions them by first name. A confirmation
//     failure is logged and never surfaces.
func (s *IntakeService) Process(ctx context.Context, req IntakeRequest) (*IntakeResult, error) {
	res := &IntakeResult{}

	// 1) Durable record first, best effort.
	sub, err := repo.CreateSubmission(ctx, s.DB, req.FormType, req.FormData)
	if err != nil {
		log.Error().Err(err).
			Str("form_type", req.FormType.String()).
			Msg("submission write failed; continuing with notification")
	} else {
		res.SubmissionID = sub.ID
	}

	// 2) Internal lead alert (critical path).
	to := []string{sysutil.FirstNonEmpty(req.RecipientEmail, s.LeadsInbox)}
	to = append(to, req.AdditionalRecipients...)

	alert := mail.Message{
		To:      to,
		Subject: mail.AlertSubject(req.FormType, req.FormData),
		HTML:    mail.AlertBody(req.FormType, req.FormData),
	}
	if err := s.Sender.Send(ctx, alert); err != nil {
		return res, fmt.Errorf("%w: %v", ErrAlertSendFailed, err)
	}

	// 3) Mark the stored row as emailed.
	if res.SubmissionID != "" {
		if err := repo.MarkSubmissionEmailed(ctx, s.DB, res.SubmissionID); err != nil {
			log.Error().Err(err).
				Str("submission_id", res.SubmissionID).
				Msg("failed to mark submission emailed")
		}
	}

	// 4) Prospect confirmation (best effort).
	if req.FormType.SendsConfirmation() {
		email := domain.ProspectEmail(req.FormData)
		first := domain.FirstName(req.FormData)
		if email != "" && first != "" {
			cfg := mail.ConfirmationFor(req.FormType)
			conf := mail.Message{
				To:      []string{email},
				Subject: cfg.Subject,
				HTML:    mail.ConfirmationBody(cfg, first, domain.AdvisorFirstName(req.FormData)),
			}
			if err := s.Sender.Send(ctx, conf); err != nil {
				log.Warn().Err(err).
					Str("form_type", req.FormType.String()).
					Msg("prospect confirmation failed")
			} else {
				res.ConfirmationSent = true
			}
		}
	}

	return res, nil
}
