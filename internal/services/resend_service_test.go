package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

func seedApplication(t *testing.T, db *gorm.DB, app *domain.LifeInsuranceApplication) {
	t.Helper()
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
}

func TestResendPDF_NotFound(t *testing.T) {
	db := newSvcDB(t)
	svc := &ApplicationService{DB: db, Sender: &fakeSender{}, ApplicationsInbox: "applications@crestviewadvisors.com"}

	if _, err := svc.ResendPDF(context.Background(), "missing-id"); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("err = %v; want ErrApplicationNotFound", err)
	}
}

func TestResendPDF_AdvisorEmailOnRecord(t *testing.T) {
	db := newSvcDB(t)
	seedApplication(t, db, &domain.LifeInsuranceApplication{
		ID:            "app-1",
		ApplicantName: "John Smith",
		AdvisorName:   "Jane O'Brien",
		AdvisorEmail:  "jane.obrien@crestviewadvisors.com",
	})
	sender := &fakeSender{}
	svc := &ApplicationService{DB: db, Sender: sender, ApplicationsInbox: "applications@crestviewadvisors.com"}

	res, err := svc.ResendPDF(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("ResendPDF: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success: %+v", res)
	}
	if res.Message != "Application PDF sent to advisor Jane O'Brien" {
		t.Fatalf("message = %q", res.Message)
	}
	if len(res.Results) != 2 {
		t.Fatalf("results = %+v; want advisor and leads entries", res.Results)
	}
	if res.Results[0].Recipient != RecipientAdvisor || !res.Results[0].Success {
		t.Fatalf("advisor result = %+v", res.Results[0])
	}
	if res.Results[1].Recipient != RecipientLeads || !res.Results[1].Success {
		t.Fatalf("leads result = %+v", res.Results[1])
	}

	// Two independent sends, each carrying the PDF attachment
	if len(sender.sent) != 2 {
		t.Fatalf("sends = %d; want 2", len(sender.sent))
	}
	if sender.sent[0].To[0] != "jane.obrien@crestviewadvisors.com" {
		t.Fatalf("advisor send to = %v", sender.sent[0].To)
	}
	if sender.sent[1].To[0] != "applications@crestviewadvisors.com" {
		t.Fatalf("internal send to = %v", sender.sent[1].To)
	}
	for _, m := range sender.sent {
		if m.Subject != "Life Insurance Application - John Smith" {
			t.Fatalf("subject = %q", m.Subject)
		}
		if len(m.Attachments) != 1 {
			t.Fatalf("attachments = %d; want 1", len(m.Attachments))
		}
		att := m.Attachments[0]
		if att.Filename != "life-insurance-application-app-1.pdf" || att.ContentType != "application/pdf" {
			t.Fatalf("attachment = %+v", att)
		}
		raw, err := base64.StdEncoding.DecodeString(att.Content)
		if err != nil {
			t.Fatalf("attachment content is not base64: %v", err)
		}
		if !bytes.HasPrefix(raw, []byte("%PDF-")) {
			t.Fatalf("attachment content is not a PDF")
		}
	}
}

func TestResendPDF_AdvisorResolvedByDirectoryID(t *testing.T) {
	db := newSvcDB(t)
	advisorID := "adv-7"
	if err := db.Create(&domain.Advisor{ID: advisorID, Name: "Sam Royce", Email: "sam.royce@crestviewadvisors.com", Slug: "sam-royce"}).Error; err != nil {
		t.Fatalf("seed advisor: %v", err)
	}
	seedApplication(t, db, &domain.LifeInsuranceApplication{
		ID:            "app-2",
		ApplicantName: "Mary Major",
		AdvisorID:     &advisorID,
		AdvisorName:   "Sam Royce",
	})
	sender := &fakeSender{}
	svc := &ApplicationService{DB: db, Sender: sender, ApplicationsInbox: "applications@crestviewadvisors.com"}

	res, err := svc.ResendPDF(context.Background(), "app-2")
	if err != nil {
		t.Fatalf("ResendPDF: %v", err)
	}
	if !res.Success || sender.sent[0].To[0] != "sam.royce@crestviewadvisors.com" {
		t.Fatalf("directory-id resolution failed: %+v to=%v", res, sender.sent[0].To)
	}
}

func TestResendPDF_AdvisorResolvedBySlugFallback(t *testing.T) {
	db := newSvcDB(t)
	if err := db.Create(&domain.Advisor{ID: "adv-9", Name: "Dr. Jane O'Brien", Email: "jane@crestviewadvisors.com", Slug: "dr-jane-o-brien"}).Error; err != nil {
		t.Fatalf("seed advisor: %v", err)
	}
	ghostID := "no-such-id"
	seedApplication(t, db, &domain.LifeInsuranceApplication{
		ID:            "app-3",
		ApplicantName: "Pat Lee",
		AdvisorID:     &ghostID, // ID lookup fails, slug fallback succeeds
		AdvisorName:   "Dr. Jane O'Brien",
	})
	sender := &fakeSender{}
	svc := &ApplicationService{DB: db, Sender: sender, ApplicationsInbox: "applications@crestviewadvisors.com"}

	res, err := svc.ResendPDF(context.Background(), "app-3")
	if err != nil {
		t.Fatalf("ResendPDF: %v", err)
	}
	if !res.Success || sender.sent[0].To[0] != "jane@crestviewadvisors.com" {
		t.Fatalf("slug fallback failed: %+v to=%v", res, sender.sent[0].To)
	}
	if res.Message != "Application PDF sent to advisor Dr. Jane O'Brien" {
		t.Fatalf("message = %q", res.Message)
	}
}

func TestResendPDF_UnresolvableAdvisorDegradesToInternalOnly(t *testing.T) {
	db := newSvcDB(t)
	seedApplication(t, db, &domain.LifeInsuranceApplication{
		ID:            "app-4",
		ApplicantName: "Lee Wong",
		AdvisorName:   "Nobody Known",
	})
	sender := &fakeSender{}
	svc := &ApplicationService{DB: db, Sender: sender, ApplicationsInbox: "applications@crestviewadvisors.com"}

	res, err := svc.ResendPDF(context.Background(), "app-4")
	if err != nil {
		t.Fatalf("ResendPDF: %v", err)
	}
	if !res.Success {
		t.Fatalf("internal-only delivery still succeeds: %+v", res)
	}
	if res.Message != "Advisor email unavailable; application PDF sent to the internal applications inbox only" {
		t.Fatalf("message = %q", res.Message)
	}
	if len(res.Results) != 1 || res.Results[0].Recipient != RecipientLeads {
		t.Fatalf("results = %+v; want single leads entry", res.Results)
	}
	if len(sender.sent) != 1 || sender.sent[0].To[0] != "applications@crestviewadvisors.com" {
		t.Fatalf("sends = %+v", sender.sent)
	}
}

func TestResendPDF_AdvisorFailureInternalSucceeds(t *testing.T) {
	db := newSvcDB(t)
	seedApplication(t, db, &domain.LifeInsuranceApplication{
		ID:           "app-5",
		AdvisorEmail: "down@crestviewadvisors.com",
	})
	sender := &fakeSender{failTo: map[string]error{
		"down@crestviewadvisors.com": errors.New("bounced"),
	}}
	svc := &ApplicationService{DB: db, Sender: sender, ApplicationsInbox: "applications@crestviewadvisors.com"}

	res, err := svc.ResendPDF(context.Background(), "app-5")
	if err != nil {
		t.Fatalf("ResendPDF: %v", err)
	}
	if !res.Success {
		t.Fatalf("one successful delivery should mark the operation successful")
	}
	if res.Message != "Advisor delivery failed; application PDF sent to the internal applications inbox only" {
		t.Fatalf("message = %q", res.Message)
	}
	if len(res.Results) != 2 {
		t.Fatalf("results = %+v", res.Results)
	}
	if res.Results[0].Success || res.Results[0].Error != "bounced" {
		t.Fatalf("advisor result = %+v", res.Results[0])
	}
	if !res.Results[1].Success {
		t.Fatalf("leads result = %+v", res.Results[1])
	}
}

func TestResendPDF_AllDeliveriesFail(t *testing.T) {
	db := newSvcDB(t)
	seedApplication(t, db, &domain.LifeInsuranceApplication{
		ID:           "app-6",
		AdvisorEmail: "a@crestviewadvisors.com",
	})
	sender := &fakeSender{failTo: map[string]error{
		"a@crestviewadvisors.com":            errors.New("bounce a"),
		"applications@crestviewadvisors.com": errors.New("bounce b"),
	}}
	svc := &ApplicationService{DB: db, Sender: sender, ApplicationsInbox: "applications@crestviewadvisors.com"}

	res, err := svc.ResendPDF(context.Background(), "app-6")
	if err != nil {
		t.Fatalf("delivery failures are reported in the result, not as an error: %v", err)
	}
	if res.Success {
		t.Fatalf("no delivery succeeded; Success must be false")
	}
	if res.Message != "Failed to deliver the application PDF to any recipient" {
		t.Fatalf("message = %q", res.Message)
	}
}
