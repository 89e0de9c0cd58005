// Internal lead alert rendering.
//
// The alert email is the business-critical notification: it tells the leads
// desk that a form came in, with every submitted field laid out in a table.
// Keys are humanized for readability and both keys and values are HTML
// escaped, so a submission containing markup renders as text and never as
// live HTML in anyone's inbox.
package mail

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

// alertSubjects maps each form type to its alert subject template. The %s
// verb receives the submitter's display name ("Unknown" when no name fields
// are present). Types without an entry get the generic fallback subject.
var alertSubjects = map[domain.FormType]string{
	domain.FormContactInquiry:         "New Contact Inquiry from %s",
	domain.FormNewsletterSignup:       "New Newsletter Signup: %s",
	domain.FormConsultationRequest:    "New Consultation Request from %s",
	domain.FormRetirementConsultation: "New Retirement Planning Consultation from %s",
	domain.FormLifeInsuranceQuote:     "New Life Insurance Quote Request from %s",
	domain.FormMedicareConsultation:   "New Medicare Consultation Request from %s",
	domain.FormAnnuityConsultation:    "New Annuity Consultation Request from %s",
	domain.FormTaxPlanning:            "New Tax Planning Consultation from %s",
	domain.FormEstatePlanning:         "New Estate Planning Consultation from %s",
	domain.FormCollegePlanning:        "New College Planning Consultation from %s",
	domain.FormBusinessInsurance:      "New Business Insurance Inquiry from %s",
	domain.FormGroupBenefits:          "New Group Benefits Inquiry from %s",
	domain.FormDisabilityQuote:        "New Disability Insurance Quote Request from %s",
	domain.FormLongTermCare:           "New Long-Term Care Inquiry from %s",
	domain.FormAgentApplication:       "New Agent Application from %s",
	domain.FormFranchiseApplication:   "New Franchise Application from %s",
	domain.FormAdvisorOnboarding:      "New Advisor Onboarding Submission from %s",
	domain.FormPartnerInquiry:         "New Partner Inquiry from %s",
	domain.FormWebinarRegistration:    "New Webinar Registration: %s",
	domain.FormEventRSVP:              "New Event RSVP: %s",
}

// AlertSubject returns the internal alert subject for the given submission.
func AlertSubject(formType domain.FormType, formData domain.FormData) string {
	name := domain.DisplayName(formData)
	if tmpl, ok := alertSubjects[formType]; ok {
		return fmt.Sprintf(tmpl, name)
	}
	// Unreachable for validated input; kept so an unmapped new type still
	// produces a usable subject.
	return fmt.Sprintf("New Form Submission: %s", formType)
}

// AlertBody renders the internal alert as an HTML table of every non-empty
// formData entry. Rows are sorted by key for a stable layout; keys are
// humanized and, like values, HTML-escaped. Array values are comma-joined
// before escaping.
func AlertBody(formType domain.FormType, formData domain.FormData) string {
	var b strings.Builder
	b.WriteString(`<h2>New Form Submission</h2>`)
	b.WriteString(fmt.Sprintf(`<p><strong>Form:</strong> %s</p>`, html.EscapeString(formType.String())))
	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse">`)

	keys := make([]string, 0, len(formData))
	for k := range formData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := stringifyValue(formData[k])
		if v == "" {
			continue
		}
		b.WriteString(`<tr><td style="background:#f4f4f4"><strong>`)
		b.WriteString(html.EscapeString(HumanizeKey(k)))
		b.WriteString(`</strong></td><td>`)
		b.WriteString(html.EscapeString(v))
		b.WriteString(`</td></tr>`)
	}

	b.WriteString(`</table>`)
	return b.String()
}

// HumanizeKey converts a camelCase form field name into a spaced, title-cased
// label: "firstName" -> "First Name", "employerName" -> "Employer Name".
// Keys that already contain spaces are only title-cased.
func HumanizeKey(key string) string {
	var b strings.Builder
	runes := []rune(key)
	prev := ' '
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) && runes[i-1] != ' ' {
			b.WriteRune(' ')
			prev = ' '
		}
		if prev == ' ' {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// stringifyValue flattens a raw formData value to display text. Arrays are
// comma-joined; nil and empty strings collapse to "" so the row is skipped.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := stringifyValue(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; print integers without a fraction.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
