// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// FormSubmission model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. The intake service decides whether a
//     write failure is fatal (it is not: the lead alert still goes out).
//
// Functions:
//
//   - CreateSubmission(ctx, db, formType, formData) -> *domain.FormSubmission, error
//     Inserts a submission row with status "new" and email_sent false,
//     extracting the conventional contact columns from the payload.
//
//   - MarkSubmissionEmailed(ctx, db, id) -> error
//     Flips email_sent to true after the internal alert was delivered.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateSubmission inserts a new FormSubmission for the given validated form
// type and payload. The row is written with Status "new" and EmailSent false;
// the convenience contact columns are extracted from the payload by the fixed
// convention in domain.ExtractContact.
//
// On success, it returns the persisted submission. On failure, it returns a
// DB error and no row exists.
func CreateSubmission(ctx context.Context, db *gorm.DB, formType domain.FormType, formData domain.FormData) (*domain.FormSubmission, error) {
	contact := domain.ExtractContact(formData)
	sub := &domain.FormSubmission{
		ID:        uuid.NewString(),
		FormType:  formType,
		FormData:  formData,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Source:    contact.Source,
		Partner:   contact.Partner,
		Advisor:   contact.Advisor,
		Status:    "new",
		EmailSent: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// MarkSubmissionEmailed records that the internal alert for submission id was
// delivered. Updating a non-existent id is not an error: the initial insert
// may legitimately have failed, in which case there is nothing to mark.
func MarkSubmissionEmailed(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&domain.FormSubmission{}).
		Where("id = ?", id).
		Update("email_sent", true).Error
}
