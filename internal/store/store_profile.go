package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/geprek/internal/models"
)

// GetStoreProfile returns the singleton profile or ErrNotFound.
func (s *Store) GetStoreProfile(ctx context.Context) (*models.StoreProfile, error) {
	var profile models.StoreProfile
	if err := s.db.WithContext(ctx).Order("created_at asc").First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// SaveStoreProfile creates the profile on first use and updates it afterwards.
// It reports whether a new row was created.
func (s *Store) SaveStoreProfile(ctx context.Context, input *models.StoreProfile) (*models.StoreProfile, bool, error) {
	var (
		saved   models.StoreProfile
		created bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent first saves so only one row is ever created.
		if err := tx.Exec("LOCK TABLE store_profiles IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Order("created_at asc").First(&saved).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			saved = models.StoreProfile{
				Name:      input.Name,
				Slogan:    input.Slogan,
				Address:   input.Address,
				Phone:     input.Phone,
				Instagram: input.Instagram,
				Facebook:  input.Facebook,
			}
			created = true
			return tx.Create(&saved).Error
		}
		if err != nil {
			return err
		}

		saved.Name = input.Name
		saved.Slogan = input.Slogan
		saved.Address = input.Address
		saved.Phone = input.Phone
		saved.Instagram = input.Instagram
		saved.Facebook = input.Facebook
		return tx.Save(&saved).Error
	})
	if err != nil {
		return nil, false, translate(err)
	}
	return &saved, created, nil
}
