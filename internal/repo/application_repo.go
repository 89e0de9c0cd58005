// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides read-only repository functions for the
// LifeInsuranceApplication model and the advisor directory.
//
// Error semantics:
//   - When a record is not found, functions return ErrNotFound.
//   - On other DB errors, the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/crestview-advisors/go-intake-backend/internal/domain"
)

// GetApplication fetches a stored life insurance application by its primary
// key. Returns ErrNotFound when no such application exists.
func GetApplication(ctx context.Context, db *gorm.DB, id string) (*domain.LifeInsuranceApplication, error) {
	var app domain.LifeInsuranceApplication
	if err := db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// GetAdvisorByID fetches an advisor directory entry by primary key.
// Returns ErrNotFound when the advisor does not exist.
func GetAdvisorByID(ctx context.Context, db *gorm.DB, id string) (*domain.Advisor, error) {
	var adv domain.Advisor
	if err := db.WithContext(ctx).First(&adv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &adv, nil
}

// GetAdvisorBySlug fetches an advisor directory entry by its name-derived
// slug. Returns ErrNotFound when no advisor carries that slug.
func GetAdvisorBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Advisor, error) {
	var adv domain.Advisor
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&adv).Error; err != nil {
		return nil, err
	}
	return &adv, nil
}
