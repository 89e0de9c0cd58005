// Package domain defines the persistence models for form submissions, life
// insurance applications, and the advisor directory. These types are mapped
// with GORM and form the core data layer of the intake pipeline.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// FormData is the opaque key/value payload submitted by a public form. It is
// persisted as a JSON column; the pipeline never enforces a schema on it
// beyond the convention-based field extraction in the submission store.
type FormData map[string]any

// FormSubmission is the durable record of one accepted form submission.
//
// Invariant: the row is written with Status "new" and EmailSent false before
// any email is attempted. EmailSent flips to true only after the internal
// lead alert succeeds. Rows are never deleted by this subsystem.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - FormType: validated form identifier (see formtype.go).
//   - FormData: raw submitted payload, stored as JSON.
//   - Name/Email/Phone/Source/Partner/Advisor: convenience columns extracted
//     from FormData by convention, nullable, indexed where commonly queried.
//   - Status: lifecycle flag, defaults to "new".
//   - EmailSent: whether the internal alert was delivered.
type FormSubmission struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	FormType  FormType       `json:"form_type"  gorm:"type:varchar(64);not null;index:idx_submissions_type"`
	FormData  FormData       `json:"form_data"  gorm:"serializer:json"`
	Name      *string        `json:"name,omitempty"    gorm:"type:varchar(255)"`
	Email     *string        `json:"email,omitempty"   gorm:"type:varchar(255);index:idx_submissions_email"`
	Phone     *string        `json:"phone,omitempty"   gorm:"type:varchar(64)"`
	Source    *string        `json:"source,omitempty"  gorm:"type:varchar(255)"`
	Partner   *string        `json:"partner,omitempty" gorm:"type:varchar(255)"`
	Advisor   *string        `json:"advisor,omitempty" gorm:"type:varchar(255)"`
	Status    string         `json:"status"     gorm:"type:varchar(32);not null;default:'new'"`
	EmailSent bool           `json:"email_sent" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"created_at" gorm:"index:idx_submissions_created"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for FormSubmission.
func (FormSubmission) TableName() string { return "form_submissions" }

// LifeInsuranceApplication is the stored multi-step life insurance
// application. It is read-only to this pipeline: the resend flow fetches it
// by ID, renders the PDF snapshot, and never mutates it.
//
// FormData holds the nine sequential application steps (insured identity,
// contact/employment, ownership, beneficiaries, policy/riders, existing
// coverage, medical/lifestyle, payment, signature). Each step is
// independently optional; renderers degrade to "N/A" for anything missing.
type LifeInsuranceApplication struct {
	ID             string    `json:"id"              gorm:"type:char(36);primaryKey"`
	ApplicantName  string    `json:"applicant_name"  gorm:"type:varchar(255)"`
	ApplicantEmail string    `json:"applicant_email" gorm:"type:varchar(255)"`
	ApplicantPhone string    `json:"applicant_phone" gorm:"type:varchar(64)"`
	AdvisorID      *string   `json:"advisor_id,omitempty"    gorm:"type:varchar(64);index"`
	AdvisorName    string    `json:"advisor_name"    gorm:"type:varchar(255)"`
	AdvisorEmail   string    `json:"advisor_email"   gorm:"type:varchar(255)"`
	FormData       FormData  `json:"form_data"       gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for LifeInsuranceApplication.
func (LifeInsuranceApplication) TableName() string { return "life_insurance_applications" }

// Advisor is one entry in the advisor directory, used to resolve the
// delivery address for application PDFs. Slug is the URL-safe identity
// derived from the advisor's display name and backs the fallback lookup
// when the primary-key lookup fails.
type Advisor struct {
	ID        string    `json:"id"    gorm:"type:varchar(64);primaryKey"`
	Name      string    `json:"name"  gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Slug      string    `json:"slug"  gorm:"type:varchar(255);uniqueIndex:ux_advisors_slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Advisor.
func (Advisor) TableName() string { return "advisors" }
