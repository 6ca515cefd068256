package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"gorm.io/gorm"
)

type ProfileService interface {
	// GetOrCreate returns the profile row, inserting the default one the
	// first time a user is seen.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*model.UserProfile, error)
}

type profileService struct {
	profiles repo.UserProfileRepo
}

func NewProfileService(profiles repo.UserProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	fresh := &model.UserProfile{ID: userID, PreferredLanguage: "en"}
	if err := s.profiles.CreateIfAbsent(ctx, fresh); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return s.profiles.GetByID(ctx, userID)
}

func (s *profileService) UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*model.UserProfile, error) {
	if !model.IsSupportedLanguage(language) {
		return nil, ErrUnsupportedLanguage
	}
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.profiles.UpdateLanguage(ctx, userID, language); err != nil {
		return nil, fmt.Errorf("update language: %w", err)
	}
	return s.profiles.GetByID(ctx, userID)
}
