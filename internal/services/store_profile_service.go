package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
)

// StoreProfileStore persists the singleton brand profile.
type StoreProfileStore interface {
	GetStoreProfile(ctx context.Context) (*models.StoreProfile, error)
	SaveStoreProfile(ctx context.Context, profile *models.StoreProfile) (*models.StoreProfile, bool, error)
}

// StoreProfileService reads and writes the brand profile.
type StoreProfileService struct {
	store StoreProfileStore
}

func NewStoreProfileService(store StoreProfileStore) *StoreProfileService {
	return &StoreProfileService{store: store}
}

// StoreProfileInput is the editable profile payload.
type StoreProfileInput struct {
	Name      string `json:"name"`
	Slogan    string `json:"slogan"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

// Current returns the stored profile, or nil when none has been saved.
func (s *StoreProfileService) Current(ctx context.Context) (*models.StoreProfile, error) {
	profile, err := s.store.GetStoreProfile(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return profile, err
}

// List returns the profile as a list of zero or one element.
func (s *StoreProfileService) List(ctx context.Context) ([]models.StoreProfile, error) {
	profile, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []models.StoreProfile{}, nil
	}
	return []models.StoreProfile{*profile}, nil
}

// Save creates the profile on first use and overwrites it afterwards. It
// reports whether the profile was created.
func (s *StoreProfileService) Save(ctx context.Context, in StoreProfileInput) (*models.StoreProfile, bool, error) {
	profile, created, err := s.store.SaveStoreProfile(ctx, &models.StoreProfile{
		Name:      strings.TrimSpace(in.Name),
		Slogan:    strings.TrimSpace(in.Slogan),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Instagram: strings.TrimSpace(in.Instagram),
		Facebook:  strings.TrimSpace(in.Facebook),
	})
	if err != nil {
		return nil, false, fmt.Errorf("save store profile: %w", err)
	}
	return profile, created, nil
}
