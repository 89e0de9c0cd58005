package mail

import (
	"strings"
	"testing"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

func TestAlertSubject_PerTypeAndFallbacks(t *testing.T) {
	fd := domain.FormData{"fullName": "Jane Doe"}

	if got := AlertSubject(domain.FormContactInquiry, fd); got != "New Contact Inquiry from Jane Doe" {
		t.Fatalf("subject = %q", got)
	}
	if got := AlertSubject(domain.FormLifeInsuranceQuote, fd); got != "New Life Insurance Quote Request from Jane Doe" {
		t.Fatalf("subject = %q", got)
	}

	// No name fields -> "Unknown"
	if got := AlertSubject(domain.FormContactInquiry, domain.FormData{}); got != "New Contact Inquiry from Unknown" {
		t.Fatalf("subject = %q", got)
	}

	// Unmapped type still yields a usable subject
	if got := AlertSubject(domain.FormType("mystery-form"), fd); got != "New Form Submission: mystery-form" {
		t.Fatalf("fallback subject = %q", got)
	}
}

func TestAlertSubject_CoversEveryAllowedType(t *testing.T) {
	for _, raw := range []string{
		"contact-inquiry", "newsletter-signup", "consultation-request",
		"retirement-planning-consultation", "life-insurance-quote",
		"medicare-consultation", "annuity-consultation",
		"tax-planning-consultation", "estate-planning-consultation",
		"college-planning-consultation", "business-insurance-inquiry",
		"group-benefits-inquiry", "disability-insurance-quote",
		"long-term-care-inquiry", "agent-application", "franchise-application",
		"advisor-onboarding", "partner-inquiry", "webinar-registration",
		"event-rsvp",
	} {
		ft, ok := domain.ParseFormType(raw)
		if !ok {
			t.Fatalf("ParseFormType(%q) failed", raw)
		}
		if _, ok := alertSubjects[ft]; !ok {
			t.Fatalf("no alert subject template for %q", raw)
		}
	}
}

func TestAlertBody_TableRowsSortedEscapedAndFiltered(t *testing.T) {
	body := AlertBody(domain.FormContactInquiry, domain.FormData{
		"message":    "<script>alert('x')</script>",
		"email":      "jane@example.com",
		"firstName":  "Jane",
		"empty":      "",
		"nilValue":   nil,
		"interests":  []any{"retirement", "life insurance"},
		"budget":     250000.0,
		"newsletter": true,
	})

	// Markup in values must render as text
	if strings.Contains(body, "<script>") {
		t.Fatalf("body contains unescaped markup: %s", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup in body: %s", body)
	}

	// Keys are humanized
	if !strings.Contains(body, "<strong>First Name</strong>") {
		t.Fatalf("expected humanized key, got: %s", body)
	}

	// Empty and nil values are skipped entirely
	if strings.Contains(body, "Empty") || strings.Contains(body, "Nil Value") {
		t.Fatalf("empty values must not produce rows: %s", body)
	}

	// Arrays comma-joined, numbers integer-printed, bools lowercased
	if !strings.Contains(body, "retirement, life insurance") {
		t.Fatalf("expected comma-joined array: %s", body)
	}
	if !strings.Contains(body, "<td>250000</td>") {
		t.Fatalf("expected integer-printed number: %s", body)
	}
	if !strings.Contains(body, "<td>true</td>") {
		t.Fatalf("expected lowercase bool: %s", body)
	}

	// Sorted keys: "budget" row appears before "message" row
	if strings.Index(body, "Budget") > strings.Index(body, "Message") {
		t.Fatalf("rows not sorted by key: %s", body)
	}
}

func TestHumanizeKey(t *testing.T) {
	cases := map[string]string{
		"firstName":       "First Name",
		"employerName":    "Employer Name",
		"email":           "Email",
		"annualIncomeUSD": "Annual Income USD",
		"already spaced":  "Already Spaced",
		"":                "",
	}
	for in, want := range cases {
		if got := HumanizeKey(in); got != want {
			t.Fatalf("HumanizeKey(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestConfirmationFor_And_Body(t *testing.T) {
	cfg := ConfirmationFor(domain.FormContactInquiry)
	if cfg.Subject != "We received your inquiry" {
		t.Fatalf("subject = %q", cfg.Subject)
	}

	// Types without an entry fall back to the generic config
	generic := ConfirmationFor(domain.FormEventRSVP)
	if generic.Subject != "We received your submission" {
		t.Fatalf("generic subject = %q", generic.Subject)
	}

	body := ConfirmationBody(cfg, "Jane <admin>", "")
	if !strings.Contains(body, "Hi Jane &lt;admin&gt;,") {
		t.Fatalf("expected escaped greeting, got: %s", body)
	}
	for _, step := range cfg.NextSteps {
		if !strings.Contains(body, step) {
			t.Fatalf("missing next step %q in body: %s", step, body)
		}
	}
	if !strings.Contains(body, cfg.SignOff) {
		t.Fatalf("missing sign-off in body: %s", body)
	}
	// Without an advisor there is no advisor sentence at all
	if strings.Contains(body, "Your advisor") {
		t.Fatalf("unexpected advisor sentence: %s", body)
	}
}

func TestConfirmationBody_MentionsAdvisor(t *testing.T) {
	cfg := ConfirmationFor(domain.FormContactInquiry)

	body := ConfirmationBody(cfg, "Jane", "Sam")
	if !strings.Contains(body, "Your advisor Sam will be in touch with you personally.") {
		t.Fatalf("expected advisor sentence, got: %s", body)
	}
	// Advisor sentence sits between the intro and the next steps
	if strings.Index(body, "Your advisor Sam") < strings.Index(body, cfg.BodyIntro) ||
		strings.Index(body, "Your advisor Sam") > strings.Index(body, "What happens next") {
		t.Fatalf("advisor sentence misplaced: %s", body)
	}

	// Advisor names are escaped like every other interpolated value
	hostile := ConfirmationBody(cfg, "Jane", "<b>Sam</b>")
	if strings.Contains(hostile, "<b>Sam</b>") || !strings.Contains(hostile, "&lt;b&gt;Sam&lt;/b&gt;") {
		t.Fatalf("advisor name not escaped: %s", hostile)
	}
}
