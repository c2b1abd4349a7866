package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/repositories"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
)

// LocationService defines the interface for location-related operations
type LocationService interface {
	GetAllLocations(ctx context.Context) ([]*models.Location, error)
	CreateLocation(ctx context.Context, req *dto.LocationCreateRequest) (*models.Location, error)
	UpdateLocation(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

// locationServiceImpl implements the LocationService interface
type locationServiceImpl struct {
	locationRepo repositories.ILocationRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repositories.ILocationRepository) LocationService {
	return &locationServiceImpl{
		locationRepo: locationRepo,
	}
}

// GetAllLocations retrieves all locations ordered by label
func (s *locationServiceImpl) GetAllLocations(ctx context.Context) ([]*models.Location, error) {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving locations: %w", err)
	}

	return locations, nil
}

// CreateLocation creates a new location with a caller-supplied ID
func (s *locationServiceImpl) CreateLocation(ctx context.Context, req *dto.LocationCreateRequest) (*models.Location, error) {
	location := &models.Location{
		ID:       req.ID,
		Label:    req.Label,
		Subtitle: req.Subtitle,
		Type:     models.DefaultLocationType,
	}
	if req.Type != nil {
		location.Type = *req.Type
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		if errors.Is(err, apperrors.ErrLocationAlreadyExists) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("Location ID '%s' already exists.", req.ID))
		}
		return nil, fmt.Errorf("error creating location: %w", err)
	}

	return location, nil
}

// UpdateLocation applies a partial update to an existing location
func (s *locationServiceImpl) UpdateLocation(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, apperrors.NewValidationError("No update data provided")
	}

	location, err := s.locationRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating location: %w", err)
	}

	return location, nil
}

// DeleteLocation removes a location unless faculty members still reference it
func (s *locationServiceImpl) DeleteLocation(ctx context.Context, id string) error {
	err := s.locationRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			return err
		}
		if errors.Is(err, apperrors.ErrLocationInUse) {
			return apperrors.NewConflictError("Cannot delete location: It is currently assigned to one or more faculty members.")
		}
		return fmt.Errorf("error deleting location: %w", err)
	}

	return nil
}
