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

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	GetAllFaculty(ctx context.Context) ([]*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	CreateFaculty(ctx context.Context, req *dto.FacultyCreateRequest) (*models.Faculty, error)
	UpdateProfile(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error)
	UpdateAvailability(ctx context.Context, id int64, availability bool) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo repositories.IFacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo repositories.IFacultyRepository) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// GetAllFaculty retrieves all faculty members ordered by name
func (s *facultyServiceImpl) GetAllFaculty(ctx context.Context) ([]*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return faculty, nil
}

// GetFacultyByID retrieves a single faculty member
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return faculty, nil
}

// CreateFaculty creates a new faculty member. Availability defaults to true
// when the request leaves it unset; a supplied location_id must exist.
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.FacultyCreateRequest) (*models.Faculty, error) {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	coursesTaken := req.CoursesTaken
	if coursesTaken == nil {
		coursesTaken = []string{}
	}

	faculty := &models.Faculty{
		Name:         req.Name,
		Department:   req.Department,
		School:       req.School,
		Designation:  req.Designation,
		Role:         req.Role,
		CoursesTaken: coursesTaken,
		CabinNumber:  req.CabinNumber,
		PhoneNumber:  req.PhoneNumber,
		Availability: availability,
		LocationID:   req.LocationID,
	}

	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		if errors.Is(err, apperrors.ErrFacultyLocationMissing) {
			locationID := ""
			if req.LocationID != nil {
				locationID = *req.LocationID
			}
			return nil, apperrors.NewValidationError(fmt.Sprintf("Location ID '%s' does not exist.", locationID))
		}
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	return faculty, nil
}

// UpdateProfile applies a partial profile update to an existing faculty member
func (s *facultyServiceImpl) UpdateProfile(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, apperrors.NewValidationError("No update data provided")
	}

	faculty, err := s.facultyRepo.UpdateProfile(ctx, id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating faculty profile: %w", err)
	}

	return faculty, nil
}

// UpdateAvailability flips the availability flag of an existing faculty member
func (s *facultyServiceImpl) UpdateAvailability(ctx context.Context, id int64, availability bool) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.UpdateAvailability(ctx, id, availability)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating faculty availability: %w", err)
	}

	return faculty, nil
}

// DeleteFaculty removes a faculty member; the store cascades the delete to
// the associated faculty login user.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	err := s.facultyRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return err
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	return nil
}
