// Package pdf renders a stored life insurance application as a paginated,
// styled PDF suitable for email attachment. This file holds the field
// formatting rules: placeholder handling, boolean and currency display,
// SSN and account number transforms, enum label dictionaries, and the
// advisor name slug used by the directory fallback lookup.
package pdf

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// notAvailable is the literal rendered for any missing or empty field.
// Every renderer degrades to it rather than failing.
const notAvailable = "N/A"

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatValue converts a raw form field value to display text.
//
// Rules:
//   - nil, empty, and whitespace-only strings render as "N/A"
//   - booleans render as "Yes"/"No"
//   - numeric values >= 1000 render as US-locale currency ($500,000);
//     smaller numbers print plainly
//   - everything else passes through as its string form
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return notAvailable
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return notAvailable
		}
		return s
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case float64:
		return formatNumber(t)
	case int:
		return formatNumber(float64(t))
	case int64:
		return formatNumber(float64(t))
	default:
		return usPrinter.Sprintf("%v", t)
	}
}

// formatNumber renders n as US currency when it is at least 1000, otherwise
// as a plain number. Whole values never show a fraction.
func formatNumber(n float64) string {
	whole := n == float64(int64(n))
	if n >= 1000 {
		if whole {
			return usPrinter.Sprintf("$%d", int64(n))
		}
		return usPrinter.Sprintf("$%.2f", n)
	}
	if whole {
		return usPrinter.Sprintf("%d", int64(n))
	}
	return usPrinter.Sprintf("%v", n)
}

var nonDigits = regexp.MustCompile(`\D`)

// MaskSSN reduces a social security number to its last four digits:
// "123-45-6789" -> "***-**-6789". Inputs with fewer than four digits mask
// entirely to "***-**-****".
func MaskSSN(ssn string) string {
	digits := nonDigits.ReplaceAllString(ssn, "")
	if len(digits) < 4 {
		return "***-**-****"
	}
	return "***-**-" + digits[len(digits)-4:]
}

// FormatSSN renders a full SSN as XXX-XX-XXXX. Inputs that do not carry
// exactly nine digits pass through trimmed rather than failing.
func FormatSSN(ssn string) string {
	digits := nonDigits.ReplaceAllString(ssn, "")
	if len(digits) != 9 {
		return strings.TrimSpace(ssn)
	}
	return digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
}

// MaskAccountNumber hides a bank account number down to its last four
// digits: "123456789" -> "****6789". Short inputs mask entirely.
func MaskAccountNumber(account string) string {
	digits := nonDigits.ReplaceAllString(account, "")
	if len(digits) < 4 {
		return "****"
	}
	return "****" + digits[len(digits)-4:]
}

// Enumerated code dictionaries. Unrecognized codes pass through as-is.
var (
	planLabels = map[string]string{
		"term-10":        "10-Year Term Life",
		"term-20":        "20-Year Term Life",
		"term-30":        "30-Year Term Life",
		"whole-life":     "Whole Life",
		"universal-life": "Universal Life",
		"indexed-ul":     "Indexed Universal Life",
		"final-expense":  "Final Expense",
	}
	paymentFrequencyLabels = map[string]string{
		"monthly":     "Monthly",
		"quarterly":   "Quarterly",
		"semi-annual": "Semi-Annually",
		"annual":      "Annually",
	}
	paymentMethodLabels = map[string]string{
		"eft":         "Electronic Funds Transfer",
		"direct-bill": "Direct Bill",
		"credit-card": "Credit Card",
		"payroll":     "Payroll Deduction",
	}
	sourceOfFundsLabels = map[string]string{
		"income":      "Earned Income",
		"savings":     "Savings",
		"investments": "Investments",
		"inheritance": "Inheritance",
		"gift":        "Gift",
		"other":       "Other",
	}
	citizenshipLabels = map[string]string{
		"us-citizen":    "U.S. Citizen",
		"permanent-res": "Permanent Resident",
		"visa-holder":   "Visa Holder",
		"non-resident":  "Non-Resident",
		"dual-citizen":  "Dual Citizen",
	}
)

// PlanLabel translates a plan code to its display name.
func PlanLabel(code string) string { return lookupLabel(planLabels, code) }

// PaymentFrequencyLabel translates a payment frequency code.
func PaymentFrequencyLabel(code string) string { return lookupLabel(paymentFrequencyLabels, code) }

// PaymentMethodLabel translates a payment method code.
func PaymentMethodLabel(code string) string { return lookupLabel(paymentMethodLabels, code) }

// SourceOfFundsLabel translates a source-of-funds code.
func SourceOfFundsLabel(code string) string { return lookupLabel(sourceOfFundsLabels, code) }

// CitizenshipLabel translates a citizenship status code.
func CitizenshipLabel(code string) string { return lookupLabel(citizenshipLabels, code) }

// lookupLabel resolves code through dict, passing unknown codes through
// unchanged rather than failing.
func lookupLabel(dict map[string]string, code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return notAvailable
	}
	if label, ok := dict[code]; ok {
		return label
	}
	return code
}

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// SlugifyName derives the directory slug from an advisor's display name:
// lowercase, runs of non-alphanumeric characters collapsed to a single
// hyphen, leading and trailing hyphens trimmed.
// "Dr. Jane O'Brien" -> "dr-jane-o-brien".
func SlugifyName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
