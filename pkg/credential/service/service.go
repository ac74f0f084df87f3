package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/chainsafe/helisync/pkg/app/errors"
	"github.com/chainsafe/helisync/pkg/credential"
)

const notFoundMessage = "Database credentials not found"

// Store is the narrow data-access interface for the credential service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Get(ctx context.Context, userID int64) (*credential.Credential, error)
	Create(ctx context.Context, c *credential.Credential) (*credential.Credential, error)
	Update(ctx context.Context, id int64, patch *credential.Patch) (*credential.Credential, error)
}

// Service defines the interface for managing a user's database credentials
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Get(ctx context.Context, userID int64) (*credential.Credential, error)
	Save(ctx context.Context, userID int64, req *credential.SaveRequest) (*credential.Credential, bool, error)
	Validate(ctx context.Context, userID int64) (*credential.ValidateResponse, error)
}

type credentialService struct {
	store     Store
	validator *validator.Validate
}

// NewService creates a new credential service
func NewService(store Store) Service {
	return &credentialService{
		store:     store,
		validator: validator.New(),
	}
}

func (s *credentialService) Get(ctx context.Context, userID int64) (*credential.Credential, error) {
	c, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.ResourceNotFoundError(nil, notFoundMessage)
	}
	return c, nil
}

// Save updates the user's existing record or creates one. The bool reports creation.
func (s *credentialService) Save(ctx context.Context, userID int64, req *credential.SaveRequest) (*credential.Credential, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, apperrors.BadRequestError(err, "Invalid credentials data")
	}

	existing, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		updated, err := s.store.Update(ctx, existing.ID, req.Patch())
		if err != nil {
			return nil, false, err
		}
		if updated == nil {
			return nil, false, fmt.Errorf("credentials %d disappeared during update", existing.ID)
		}
		return updated, false, nil
	}

	created, err := s.store.Create(ctx, credential.New(userID, req))
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// Validate marks the user's credentials as validated. No connection is attempted.
func (s *credentialService) Validate(ctx context.Context, userID int64) (*credential.ValidateResponse, error) {
	existing, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ResourceNotFoundError(nil, notFoundMessage)
	}

	validated := true
	updated, err := s.store.Update(ctx, existing.ID, &credential.Patch{IsValidated: &validated})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ResourceNotFoundError(nil, notFoundMessage)
	}
	return &credential.ValidateResponse{Success: true, Credentials: updated}, nil
}
