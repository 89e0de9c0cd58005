package domain

import "testing"

func TestParseFormType_AcceptsAllKnownTypes(t *testing.T) {
	known := []string{
		"contact-inquiry",
		"newsletter-signup",
		"consultation-request",
		"retirement-planning-consultation",
		"life-insurance-quote",
		"medicare-consultation",
		"annuity-consultation",
		"tax-planning-consultation",
		"estate-planning-consultation",
		"college-planning-consultation",
		"business-insurance-inquiry",
		"group-benefits-inquiry",
		"disability-insurance-quote",
		"long-term-care-inquiry",
		"agent-application",
		"franchise-application",
		"advisor-onboarding",
		"partner-inquiry",
		"webinar-registration",
		"event-rsvp",
	}
	for _, raw := range known {
		ft, ok := ParseFormType(raw)
		if !ok {
			t.Fatalf("ParseFormType(%q) rejected a known type", raw)
		}
		if ft.String() != raw {
			t.Fatalf("ParseFormType(%q) = %q", raw, ft)
		}
	}
	if len(known) != len(allowedFormTypes) {
		t.Fatalf("allow-list has %d entries; test covers %d", len(allowedFormTypes), len(known))
	}
}

func TestParseFormType_RejectsUnknownAndVariants(t *testing.T) {
	for _, raw := range []string{
		"",
		"sql-injection",
		"Contact-Inquiry",  // case sensitive
		"contact-inquiry ", // no trimming
		"contact_inquiry",  // wrong separator
		"retirement-planning",
	} {
		if ft, ok := ParseFormType(raw); ok || ft != "" {
			t.Fatalf("ParseFormType(%q) = (%q, %v); want rejection", raw, ft, ok)
		}
	}
}

func TestSendsConfirmation_SubsetOnly(t *testing.T) {
	withConfirmation := []FormType{
		FormContactInquiry,
		FormConsultationRequest,
		FormRetirementConsultation,
		FormLifeInsuranceQuote,
		FormMedicareConsultation,
		FormAnnuityConsultation,
		FormTaxPlanning,
		FormEstatePlanning,
	}
	for _, ft := range withConfirmation {
		if !ft.SendsConfirmation() {
			t.Fatalf("%s should send a confirmation", ft)
		}
	}
	for _, ft := range []FormType{FormNewsletterSignup, FormAgentApplication, FormEventRSVP, FormPartnerInquiry} {
		if ft.SendsConfirmation() {
			t.Fatalf("%s should not send a confirmation", ft)
		}
	}
}
