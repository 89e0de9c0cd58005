// Package domain defines the persistence models and core value types for the
// form intake pipeline. This file defines FormType, the enumerated set of
// submission kinds the intake endpoint accepts.
//
// FormType is deliberately a typed string with a closed allow-list: once a
// request has passed ParseFormType, downstream code (storage, notification
// templates, confirmation configs) never has to defend against an unknown
// type again. Lookup tables keyed by FormType still keep a generic fallback
// entry, but that path is unreachable for validated input.
package domain

// FormType identifies which public form produced a submission.
type FormType string

// The closed set of forms the marketing site submits. Any other value is
// rejected at the validation layer before storage or email is attempted.
const (
	FormContactInquiry         FormType = "contact-inquiry"
	FormNewsletterSignup       FormType = "newsletter-signup"
	FormConsultationRequest    FormType = "consultation-request"
	FormRetirementConsultation FormType = "retirement-planning-consultation"
	FormLifeInsuranceQuote     FormType = "life-insurance-quote"
	FormMedicareConsultation   FormType = "medicare-consultation"
	FormAnnuityConsultation    FormType = "annuity-consultation"
	FormTaxPlanning            FormType = "tax-planning-consultation"
	FormEstatePlanning         FormType = "estate-planning-consultation"
	FormCollegePlanning        FormType = "college-planning-consultation"
	FormBusinessInsurance      FormType = "business-insurance-inquiry"
	FormGroupBenefits          FormType = "group-benefits-inquiry"
	FormDisabilityQuote        FormType = "disability-insurance-quote"
	FormLongTermCare           FormType = "long-term-care-inquiry"
	FormAgentApplication       FormType = "agent-application"
	FormFranchiseApplication   FormType = "franchise-application"
	FormAdvisorOnboarding      FormType = "advisor-onboarding"
	FormPartnerInquiry         FormType = "partner-inquiry"
	FormWebinarRegistration    FormType = "webinar-registration"
	FormEventRSVP              FormType = "event-rsvp"
)

// allowedFormTypes is the membership set backing ParseFormType.
var allowedFormTypes = map[FormType]struct{}{
	FormContactInquiry:         {},
	FormNewsletterSignup:       {},
	FormConsultationRequest:    {},
	FormRetirementConsultation: {},
	FormLifeInsuranceQuote:     {},
	FormMedicareConsultation:   {},
	FormAnnuityConsultation:    {},
	FormTaxPlanning:            {},
	FormEstatePlanning:         {},
	FormCollegePlanning:        {},
	FormBusinessInsurance:      {},
	FormGroupBenefits:          {},
	FormDisabilityQuote:        {},
	FormLongTermCare:           {},
	FormAgentApplication:       {},
	FormFranchiseApplication:   {},
	FormAdvisorOnboarding:      {},
	FormPartnerInquiry:         {},
	FormWebinarRegistration:    {},
	FormEventRSVP:              {},
}

// confirmationFormTypes is the subset of forms for which a prospect
// confirmation email is sent in addition to the internal lead alert.
var confirmationFormTypes = map[FormType]struct{}{
	FormContactInquiry:         {},
	FormConsultationRequest:    {},
	FormRetirementConsultation: {},
	FormLifeInsuranceQuote:     {},
	FormMedicareConsultation:   {},
	FormAnnuityConsultation:    {},
	FormTaxPlanning:            {},
	FormEstatePlanning:         {},
}

// ParseFormType validates a raw string against the allow-list.
//
// It returns the typed value and true for a known form, or "" and false for
// anything else. Callers must reject the request when ok is false; no other
// component accepts an unvalidated FormType.
func ParseFormType(raw string) (FormType, bool) {
	ft := FormType(raw)
	if _, ok := allowedFormTypes[ft]; ok {
		return ft, true
	}
	return "", false
}

// SendsConfirmation reports whether submissions of this type trigger a
// prospect confirmation email (subject to a prospect email and first name
// being present in the submitted data).
func (ft FormType) SendsConfirmation() bool {
	_, ok := confirmationFormTypes[ft]
	return ok
}

// String returns the wire value of the form type.
func (ft FormType) String() string { return string(ft) }
