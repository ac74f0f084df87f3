package service

import (
	"context"
	"fmt"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/preference"
)

const notFoundMessage = "Indexing preferences not found"

// Store is the narrow data-access interface for the preference service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Get(ctx context.Context, userID int64) (*preference.Preference, error)
	Create(ctx context.Context, p *preference.Preference) (*preference.Preference, error)
	Update(ctx context.Context, id int64, patch *preference.Patch) (*preference.Preference, error)
}

// Service defines the interface for managing a user's indexing preferences
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Get(ctx context.Context, userID int64) (*preference.Preference, error)
	Save(ctx context.Context, userID int64, patch *preference.Patch) (*preference.Preference, bool, error)
}

type preferenceService struct {
	store Store
}

// NewService creates a new preference service
func NewService(store Store) Service {
	return &preferenceService{store: store}
}

func (s *preferenceService) Get(ctx context.Context, userID int64) (*preference.Preference, error) {
	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.ResourceNotFoundError(nil, notFoundMessage)
	}
	return p, nil
}

// Save applies patch to the user's record, creating it when absent. Flags
// omitted from patch keep their stored value, or false on creation.
func (s *preferenceService) Save(ctx context.Context, userID int64, patch *preference.Patch) (*preference.Preference, bool, error) {
	if patch == nil {
		patch = &preference.Patch{}
	}

	existing, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		updated, err := s.store.Update(ctx, existing.ID, patch)
		if err != nil {
			return nil, false, err
		}
		if updated == nil {
			return nil, false, fmt.Errorf("preferences %d disappeared during update", existing.ID)
		}
		return updated, false, nil
	}

	created, err := s.store.Create(ctx, preference.New(userID, patch))
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
