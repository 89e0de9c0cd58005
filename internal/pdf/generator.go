// Application PDF layout.
//
// The generator renders all nine application steps as titled sections of
// label/value rows on letter pages. Every page carries the navy/gold header
// band (re-drawn by the header hook whenever a row or section bar triggers a
// page break) and a footer with the final page count, stamped once the total
// is known. Values longer than the value column are wrapped before their
// height is measured, so a row never straddles the footer.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

// Layout constants, in points on a letter page (612 x 792).
const (
	pageMargin    = 40.0
	headerHeight  = 45.0
	lineHeight    = 13.0
	labelColWidth = 160.0
	sectionBarH   = 20.0
	footerReserve = 60.0
	subIndent     = 16.0
)

// Palette.
var (
	navy = [3]int{12, 35, 64}
	gold = [3]int{201, 162, 39}
	gray = [3]int{85, 85, 85}
)

// document carries the in-progress render state.
type document struct {
	pdf   *fpdf.Fpdf
	app   *domain.LifeInsuranceApplication
	pageW float64
	pageH float64
}

// Generate renders the application as a complete PDF and returns the raw
// document bytes.
func Generate(app *domain.LifeInsuranceApplication) ([]byte, error) {
	p := fpdf.New("P", "pt", "Letter", "")
	p.SetAutoPageBreak(false, 0) // page breaks are driven by row height below
	p.AliasNbPages("")

	w, h := p.GetPageSize()
	d := &document{pdf: p, app: app, pageW: w, pageH: h}

	p.SetHeaderFunc(d.pageHeader)
	p.SetFooterFunc(d.pageFooter)
	p.AddPage()

	d.renderInsured()
	d.renderContact()
	d.renderOwnership()
	d.renderBeneficiaries()
	d.renderPolicy()
	d.renderExistingCoverage()
	d.renderMedical()
	d.renderPayment()
	d.renderSignature()

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBase64 renders the application and returns the document as a
// base64 string suitable for email attachment payloads.
func GenerateBase64(app *domain.LifeInsuranceApplication) (string, error) {
	raw, err := Generate(app)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// pageHeader draws the navy band with gold title and white subtitle. It runs
// on every AddPage, so each page of the document opens identically.
func (d *document) pageHeader() {
	p := d.pdf
	p.SetFillColor(navy[0], navy[1], navy[2])
	p.Rect(0, 0, d.pageW, headerHeight, "F")

	p.SetFont("Helvetica", "B", 15)
	p.SetTextColor(gold[0], gold[1], gold[2])
	p.Text(pageMargin, 22, "Life Insurance Application")

	subtitle := strings.TrimSpace(d.app.ApplicantName)
	if subtitle == "" {
		subtitle = notAvailable
	}
	p.SetFont("Helvetica", "", 9)
	p.SetTextColor(255, 255, 255)
	p.Text(pageMargin, 37, fmt.Sprintf("Applicant: %s    Application ID: %s", subtitle, d.app.ID))

	p.SetY(headerHeight + 14)
}

// pageFooter stamps the page number, confidentiality notice, and a rule at
// the bottom of each page. The {nb} alias resolves to the final page count
// when the document closes.
func (d *document) pageFooter() {
	p := d.pdf
	y := d.pageH - 40
	p.SetDrawColor(gray[0], gray[1], gray[2])
	p.Line(pageMargin, y, d.pageW-pageMargin, y)

	p.SetFont("Helvetica", "", 7)
	p.SetTextColor(gray[0], gray[1], gray[2])
	p.Text(pageMargin, y+12, "CONFIDENTIAL - This document contains personal information intended solely for the advisor of record.")

	label := fmt.Sprintf("Page %d of {nb}", p.PageNo())
	p.SetXY(d.pageW-pageMargin-80, y+4)
	p.CellFormat(80, 12, label, "", 0, "R", false, 0, "")
}

// ensureSpace breaks to a new page (header re-drawn by the hook) when fewer
// than h points remain above the footer reserve.
func (d *document) ensureSpace(h float64) {
	if d.pdf.GetY()+h > d.pageH-footerReserve {
		d.pdf.AddPage()
	}
}

// section draws the full-width navy bar with a white section title.
func (d *document) section(title string) {
	d.ensureSpace(sectionBarH + 2*lineHeight)
	p := d.pdf
	y := p.GetY()
	p.SetFillColor(navy[0], navy[1], navy[2])
	p.Rect(pageMargin, y, d.pageW-2*pageMargin, sectionBarH, "F")
	p.SetFont("Helvetica", "B", 10)
	p.SetTextColor(255, 255, 255)
	p.Text(pageMargin+8, y+14, title)
	p.SetY(y + sectionBarH + 8)
}

// field renders one label/value row at the given indent. The value is
// wrapped at the value column boundary before its height is computed, and
// the whole row moves to a fresh page when it would not fit.
func (d *document) fieldAt(indent float64, label, value string) {
	p := d.pdf
	valueW := d.pageW - pageMargin - (pageMargin + indent + labelColWidth)
	lines := p.SplitText(value, valueW)
	if len(lines) == 0 {
		lines = []string{value}
	}
	rowH := float64(len(lines)) * lineHeight

	d.ensureSpace(rowH + 3)
	y := p.GetY()

	p.SetFont("Helvetica", "B", 9)
	p.SetTextColor(gray[0], gray[1], gray[2])
	p.SetXY(pageMargin+indent, y)
	p.CellFormat(labelColWidth, lineHeight, label, "", 0, "L", false, 0, "")

	p.SetFont("Helvetica", "", 9)
	p.SetTextColor(0, 0, 0)
	p.SetXY(pageMargin+indent+labelColWidth, y)
	p.MultiCell(valueW, lineHeight, value, "", "L", false)

	p.SetY(y + rowH + 3)
}

func (d *document) field(label, value string)    { d.fieldAt(0, label, value) }
func (d *document) subField(label, value string) { d.fieldAt(subIndent, label, value) }

// subEntry titles one entry of a repeatable sub-list (beneficiary, policy).
func (d *document) subEntry(title string) {
	d.ensureSpace(2 * lineHeight)
	p := d.pdf
	y := p.GetY()
	p.SetFont("Helvetica", "B", 9)
	p.SetTextColor(navy[0], navy[1], navy[2])
	p.Text(pageMargin+subIndent, y+10, title)
	p.SetY(y + lineHeight + 2)
}

//
// Step sections
//

func (d *document) renderInsured() {
	s := stepMap(d.app.FormData, "insured")
	d.section("Step 1: Insured Information")
	d.field("First Name", FormatValue(s["firstName"]))
	d.field("Last Name", FormatValue(s["lastName"]))
	d.field("Date of Birth", FormatValue(s["dateOfBirth"]))
	d.field("Gender", FormatValue(s["gender"]))
	// Full SSN shown deliberately: this document goes to the advisor of
	// record, not to a public summary view.
	d.field("Social Security Number", valueOrNA(FormatSSN(stepStr(s, "ssn"))))
	d.field("Birth Place", FormatValue(s["birthPlace"]))
	d.field("Citizenship Status", CitizenshipLabel(stepStr(s, "citizenshipStatus")))
	d.field("Driver's License", FormatValue(s["driversLicense"]))
}

func (d *document) renderContact() {
	s := stepMap(d.app.FormData, "contact")
	d.section("Step 2: Contact & Employment")
	d.field("Street Address", FormatValue(s["streetAddress"]))
	d.field("City", FormatValue(s["city"]))
	d.field("State", FormatValue(s["state"]))
	d.field("ZIP Code", FormatValue(s["zipCode"]))
	d.field("Phone", FormatValue(s["phone"]))
	d.field("Email", FormatValue(s["email"]))
	d.field("Employer", FormatValue(s["employerName"]))
	d.field("Occupation", FormatValue(s["occupation"]))
	d.field("Annual Income", FormatValue(s["annualIncome"]))
	d.field("Net Worth", FormatValue(s["netWorth"]))
}

func (d *document) renderOwnership() {
	s := stepMap(d.app.FormData, "ownership")
	d.section("Step 3: Ownership")
	d.field("Owner Is Insured", FormatValue(s["ownerIsInsured"]))
	d.field("Owner Name", FormatValue(s["ownerName"]))
	d.field("Relationship to Insured", FormatValue(s["relationshipToInsured"]))
	d.field("Owner SSN", valueOrNA(FormatSSN(stepStr(s, "ownerSSN"))))
	d.field("Owner Address", FormatValue(s["ownerAddress"]))
}

func (d *document) renderBeneficiaries() {
	s := stepMap(d.app.FormData, "beneficiaries")
	d.section("Step 4: Beneficiaries")
	entries := stepList(s, "beneficiaries")
	if len(entries) == 0 {
		d.field("Beneficiaries", notAvailable)
		return
	}
	// Storage order, no re-sorting.
	for i, b := range entries {
		d.subEntry(fmt.Sprintf("Beneficiary %d", i+1))
		d.subField("Full Name", FormatValue(b["fullName"]))
		d.subField("Relationship", FormatValue(b["relationship"]))
		d.subField("Share Percentage", FormatValue(b["sharePercentage"]))
		d.subField("Designation", FormatValue(b["designation"]))
	}
}

func (d *document) renderPolicy() {
	s := stepMap(d.app.FormData, "policy")
	d.section("Step 5: Policy & Riders")
	d.field("Plan", PlanLabel(stepStr(s, "planName")))
	d.field("Coverage Amount", FormatValue(s["coverageAmount"]))
	d.field("Term Length", FormatValue(s["termLength"]))
	d.field("Riders", FormatValue(joinList(s["riders"])))
	d.field("Automatic Premium Loan", FormatValue(s["automaticPremiumLoan"]))
}

func (d *document) renderExistingCoverage() {
	s := stepMap(d.app.FormData, "existingCoverage")
	d.section("Step 6: Existing Coverage")
	d.field("Has Existing Coverage", FormatValue(s["hasExistingCoverage"]))
	entries := stepList(s, "policies")
	for i, pcy := range entries {
		d.subEntry(fmt.Sprintf("Existing Policy %d", i+1))
		d.subField("Company Name", FormatValue(pcy["companyName"]))
		d.subField("Policy Number", FormatValue(pcy["policyNumber"]))
		d.subField("Amount of Coverage", FormatValue(pcy["amountOfCoverage"]))
		d.subField("Being Replaced", FormatValue(pcy["isBeingReplaced"]))
	}
}

func (d *document) renderMedical() {
	s := stepMap(d.app.FormData, "medical")
	d.section("Step 7: Medical & Lifestyle")
	d.field("Height", FormatValue(s["height"]))
	d.field("Weight", FormatValue(s["weight"]))
	d.field("Primary Physician", FormatValue(s["primaryPhysician"]))
	d.field("Medical Conditions", FormatValue(joinList(s["medicalConditions"])))
	d.field("Tobacco Use", FormatValue(s["tobaccoUse"]))
	d.field("Alcohol Use", FormatValue(s["alcoholUse"]))
	d.field("Hazardous Activities", FormatValue(joinList(s["hazardousActivities"])))
}

func (d *document) renderPayment() {
	s := stepMap(d.app.FormData, "payment")
	d.section("Step 8: Payment")
	d.field("Payment Frequency", PaymentFrequencyLabel(stepStr(s, "paymentFrequency")))
	d.field("Payment Method", PaymentMethodLabel(stepStr(s, "paymentMethod")))
	d.field("Source of Funds", SourceOfFundsLabel(stepStr(s, "sourceOfFunds")))
	d.field("Bank Name", FormatValue(s["bankName"]))
	// Account numbers are always masked, even on the advisor copy.
	d.field("Account Number", maskedAccountOrNA(stepStr(s, "accountNumber")))
	d.field("Routing Number", maskedAccountOrNA(stepStr(s, "routingNumber")))
}

func (d *document) renderSignature() {
	s := stepMap(d.app.FormData, "signature")
	d.section("Step 9: Signature")
	d.field("Signed By", FormatValue(s["signedBy"]))
	d.field("Signature Date", FormatValue(s["signatureDate"]))
	d.field("Signed At (City, State)", FormatValue(s["signedAt"]))
	d.field("Agreed to Terms", FormatValue(s["agreedToTerms"]))
}

//
// FormData access helpers
//

// stepMap returns the named step object, or an empty map when the step is
// absent or not an object. Field renderers then degrade to N/A per field.
func stepMap(fd domain.FormData, key string) map[string]any {
	if fd == nil {
		return map[string]any{}
	}
	if m, ok := fd[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// stepStr reads a string field from a step object, "" when missing.
func stepStr(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// stepList reads a list of objects from a step object, preserving order.
func stepList(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if em, ok := e.(map[string]any); ok {
			out = append(out, em)
		}
	}
	return out
}

// joinList flattens an array value to a comma-joined string, nil when the
// value is not an array (FormatValue then handles it directly).
func joinList(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	parts := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return strings.Join(parts, ", ")
}

// valueOrNA substitutes N/A for empty transformed values.
func valueOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// maskedAccountOrNA masks a non-empty account number, N/A otherwise.
func maskedAccountOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return MaskAccountNumber(s)
}
