// Prospect confirmation rendering.
//
// For a subset of form types the pipeline sends the submitter a confirmation
// email. Content is selected from a static per-form-type configuration; a
// generic fallback covers any type that reaches this stage without an entry.
package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

// ConfirmationConfig is the static content for one form type's prospect
// confirmation email.
type ConfirmationConfig struct {
	Subject   string
	BodyIntro string
	NextSteps []string
	SignOff   string
}

// confirmationConfigs holds the per-form-type confirmation content. Keys must
// stay within the confirmation subset declared on domain.FormType.
var confirmationConfigs = map[domain.FormType]ConfirmationConfig{
	domain.FormContactInquiry: {
		Subject:   "We received your inquiry",
		BodyIntro: "Thank you for reaching out to Crestview Advisors. Your inquiry is in good hands.",
		NextSteps: []string{
			"A member of our team will review your message.",
			"We will contact you within one business day.",
		},
		SignOff: "The Crestview Advisors Team",
	},
	domain.FormConsultationRequest: {
		Subject:   "Your consultation request is confirmed",
		BodyIntro: "Thank you for requesting a consultation with Crestview Advisors.",
		NextSteps: []string{
			"An advisor will review your request and goals.",
			"We will call you to schedule a convenient time.",
			"There is no cost or obligation for your first consultation.",
		},
		SignOff: "The Crestview Advisors Team",
	},
	domain.FormRetirementConsultation: {
		Subject:   "Your retirement planning consultation request",
		BodyIntro: "Thank you for taking the first step toward a confident retirement.",
		NextSteps: []string{
			"A retirement specialist will review your information.",
			"We will reach out within one business day to schedule your session.",
			"Please have a rough idea of your current savings and retirement timeline handy.",
		},
		SignOff: "The Crestview Advisors Retirement Team",
	},
	domain.FormLifeInsuranceQuote: {
		Subject:   "Your life insurance quote request",
		BodyIntro: "Thank you for requesting a life insurance quote from Crestview Advisors.",
		NextSteps: []string{
			"A licensed agent will prepare quotes from our carrier partners.",
			"We will contact you to review coverage options and pricing.",
		},
		SignOff: "The Crestview Advisors Insurance Team",
	},
	domain.FormMedicareConsultation: {
		Subject:   "Your Medicare consultation request",
		BodyIntro: "Thank you for contacting Crestview Advisors about Medicare.",
		NextSteps: []string{
			"A licensed Medicare specialist will review your request.",
			"We will call you to discuss plan options in your area.",
		},
		SignOff: "The Crestview Advisors Medicare Team",
	},
	domain.FormAnnuityConsultation: {
		Subject:   "Your annuity consultation request",
		BodyIntro: "Thank you for your interest in guaranteed retirement income.",
		NextSteps: []string{
			"An annuity specialist will review your information.",
			"We will reach out to walk through income strategies that fit your goals.",
		},
		SignOff: "The Crestview Advisors Team",
	},
	domain.FormTaxPlanning: {
		Subject:   "Your tax planning consultation request",
		BodyIntro: "Thank you for requesting a tax planning consultation.",
		NextSteps: []string{
			"A tax planning specialist will review your situation.",
			"We will contact you to schedule your strategy session.",
		},
		SignOff: "The Crestview Advisors Tax Team",
	},
	domain.FormEstatePlanning: {
		Subject:   "Your estate planning consultation request",
		BodyIntro: "Thank you for taking this important step for your family.",
		NextSteps: []string{
			"An estate planning specialist will review your request.",
			"We will contact you to schedule a confidential consultation.",
		},
		SignOff: "The Crestview Advisors Estate Team",
	},
}

// genericConfirmation covers confirmation-eligible types without a
// dedicated entry.
var genericConfirmation = ConfirmationConfig{
	Subject:   "We received your submission",
	BodyIntro: "Thank you for contacting Crestview Advisors.",
	NextSteps: []string{
		"Our team will review your submission.",
		"We will be in touch within one business day.",
	},
	SignOff: "The Crestview Advisors Team",
}

// ConfirmationFor returns the confirmation content for formType, falling
// back to the generic config for unmatched types.
func ConfirmationFor(formType domain.FormType) ConfirmationConfig {
	if cfg, ok := confirmationConfigs[formType]; ok {
		return cfg
	}
	return genericConfirmation
}

// ConfirmationBody renders the prospect confirmation email, addressing the
// prospect by first name. When the submission names an advisor, a sentence
// between the intro and the next steps tells the prospect who will follow
// up; advisorFirst == "" skips it. All interpolated values are HTML-escaped.
func ConfirmationBody(cfg ConfirmationConfig, firstName, advisorFirst string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<p>Hi %s,</p>`, html.EscapeString(firstName)))
	b.WriteString(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(cfg.BodyIntro)))
	if advisorFirst != "" {
		b.WriteString(fmt.Sprintf(`<p>Your advisor %s will be in touch with you personally.</p>`,
			html.EscapeString(advisorFirst)))
	}
	b.WriteString(`<p><strong>What happens next:</strong></p><ol>`)
	for _, step := range cfg.NextSteps {
		b.WriteString(`<li>` + html.EscapeString(step) + `</li>`)
	}
	b.WriteString(`</ol>`)
	b.WriteString(fmt.Sprintf(`<p>Warm regards,<br>%s</p>`, html.EscapeString(cfg.SignOff)))
	return b.String()
}
