// Convention-based field extraction from raw form payloads.
//
// Public forms are free-form: each one names its fields slightly differently
// (fullName vs name vs firstName/lastName). The helpers in this file encode
// the fixed lookup precedence the pipeline relies on when indexing
// submissions and when addressing prospect confirmation emails.
package domain

import "strings"

// Contact is the set of convenience fields extracted from a FormData payload
// for indexing on the submission row. Every field is optional; nil means the
// payload carried no usable value under any of the conventional keys.
type Contact struct {
	Name    *string
	Email   *string
	Phone   *string
	Source  *string
	Partner *string
	Advisor *string
}

// ExtractContact pulls the conventional contact fields out of a form payload.
//
// Name precedence: fullName, then name, then firstName + " " + lastName
// (trimmed). The remaining fields are plain single-key lookups. Non-string
// values are ignored.
func ExtractContact(fd FormData) Contact {
	return Contact{
		Name:    optString(extractName(fd)),
		Email:   optString(stringField(fd, "email")),
		Phone:   optString(stringField(fd, "phone")),
		Source:  optString(stringField(fd, "source")),
		Partner: optString(stringField(fd, "partner")),
		Advisor: optString(stringField(fd, "advisor")),
	}
}

// DisplayName returns the submitter's name for subject lines, falling back
// to "Unknown" when no name fields are present.
func DisplayName(fd FormData) string {
	if n := extractName(fd); n != "" {
		return n
	}
	return "Unknown"
}

// FirstName derives a prospect's first name for the confirmation email.
// It prefers an explicit firstName field, then the first token of fullName,
// contactName, or name, in that order. Empty string means underivable, in
// which case no confirmation is sent.
func FirstName(fd FormData) string {
	if v := stringField(fd, "firstName"); v != "" {
		return v
	}
	for _, key := range []string{"fullName", "contactName", "name"} {
		if v := stringField(fd, key); v != "" {
			return strings.Fields(v)[0]
		}
	}
	return ""
}

// AdvisorFirstName derives the assigned advisor's first name from the
// payload's advisor field, so the confirmation email can tell the prospect
// who will follow up. Empty string means the form named no advisor.
func AdvisorFirstName(fd FormData) string {
	if v := stringField(fd, "advisor"); v != "" {
		return strings.Fields(v)[0]
	}
	return ""
}

// ProspectEmail returns the submitter's email address, or "" when absent.
func ProspectEmail(fd FormData) string {
	return stringField(fd, "email")
}

func extractName(fd FormData) string {
	if v := stringField(fd, "fullName"); v != "" {
		return v
	}
	if v := stringField(fd, "name"); v != "" {
		return v
	}
	first := stringField(fd, "firstName")
	last := stringField(fd, "lastName")
	return strings.TrimSpace(first + " " + last)
}

// stringField reads a trimmed string value from the payload, returning ""
// for missing keys and non-string values.
func stringField(fd FormData, key string) string {
	if fd == nil {
		return ""
	}
	if v, ok := fd[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// optString maps "" to nil so empty extractions persist as NULL columns.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
